package repository

import (
	"context"

	"github.com/madisvain/upcount/internal/organization/domain"
	storage "github.com/madisvain/upcount/pkg/db"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]domain.Organization, error) {
	var organizations []domain.Organization
	err := r.db.WithContext(ctx).Raw(
		`SELECT *
		 FROM organizations
		 ORDER BY name ASC`,
	).Scan(&organizations).Error
	if err != nil {
		return nil, storage.Wrap("list_organizations", err)
	}
	return organizations, nil
}

func (r *repository) Get(ctx context.Context, id string) (*domain.Organization, error) {
	var organization domain.Organization
	err := r.db.WithContext(ctx).Raw(
		`SELECT *
		 FROM organizations
		 WHERE id = ?
		 LIMIT 1`,
		id,
	).Scan(&organization).Error
	if err != nil {
		return nil, storage.Wrap("get_organization", err)
	}
	if organization.ID == "" {
		return nil, nil
	}
	return &organization, nil
}

func (r *repository) Create(ctx context.Context, req domain.CreateOrganizationRequest) (*domain.Organization, error) {
	err := r.db.WithContext(ctx).Exec(
		`INSERT INTO organizations (
			id, name, country, address, email, phone, website,
			registration_number, vatin, bank_name, iban, currency,
			minimum_fraction_digits, due_days, overdue_charge,
			customerNotes, logo, invoice_number_format, date_format
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.ID,
		req.Name,
		req.Country,
		req.Address,
		req.Email,
		req.Phone,
		req.Website,
		req.RegistrationNumber,
		req.VATIN,
		req.BankName,
		req.IBAN,
		req.Currency,
		req.MinimumFractionDigits,
		req.DueDays,
		req.OverdueCharge,
		req.CustomerNotes,
		req.Logo,
		req.InvoiceNumberFormat,
		req.DateFormat,
	).Error
	if err != nil {
		return nil, storage.Wrap("create_organization", err)
	}

	organization, err := r.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if organization == nil {
		return nil, storage.NotFound("create_organization")
	}
	return organization, nil
}

func (r *repository) Update(ctx context.Context, id string, patch domain.UpdateOrganizationRequest) (*domain.Organization, error) {
	err := r.db.WithContext(ctx).Exec(
		`UPDATE organizations
		 SET name = COALESCE(?, name),
		     country = COALESCE(?, country),
		     address = COALESCE(?, address),
		     email = COALESCE(?, email),
		     phone = COALESCE(?, phone),
		     website = COALESCE(?, website),
		     registration_number = COALESCE(?, registration_number),
		     vatin = COALESCE(?, vatin),
		     bank_name = COALESCE(?, bank_name),
		     iban = COALESCE(?, iban),
		     currency = COALESCE(?, currency),
		     minimum_fraction_digits = COALESCE(?, minimum_fraction_digits),
		     due_days = COALESCE(?, due_days),
		     overdue_charge = COALESCE(?, overdue_charge),
		     customerNotes = COALESCE(?, customerNotes),
		     logo = COALESCE(?, logo),
		     invoice_number_format = COALESCE(?, invoice_number_format),
		     invoice_number_counter = COALESCE(?, invoice_number_counter),
		     date_format = COALESCE(?, date_format)
		 WHERE id = ?`,
		patch.Name,
		patch.Country,
		patch.Address,
		patch.Email,
		patch.Phone,
		patch.Website,
		patch.RegistrationNumber,
		patch.VATIN,
		patch.BankName,
		patch.IBAN,
		patch.Currency,
		patch.MinimumFractionDigits,
		patch.DueDays,
		patch.OverdueCharge,
		patch.CustomerNotes,
		patch.Logo,
		patch.InvoiceNumberFormat,
		patch.InvoiceNumberCounter,
		patch.DateFormat,
		id,
	).Error
	if err != nil {
		return nil, storage.Wrap("update_organization", err)
	}

	organization, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if organization == nil {
		return nil, storage.NotFound("update_organization")
	}
	return organization, nil
}

func (r *repository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM organizations WHERE id = ?`, id)
	if result.Error != nil {
		return false, storage.Wrap("delete_organization", result.Error)
	}
	return result.RowsAffected > 0, nil
}
