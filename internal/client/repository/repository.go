package repository

import (
	"context"

	"github.com/madisvain/upcount/internal/client/domain"
	storage "github.com/madisvain/upcount/pkg/db"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, organizationID string) ([]domain.Client, error) {
	var clients []domain.Client
	err := r.db.WithContext(ctx).Raw(
		`SELECT *
		 FROM clients
		 WHERE organizationId = ?
		 ORDER BY name ASC`,
		organizationID,
	).Scan(&clients).Error
	if err != nil {
		return nil, storage.Wrap("list_clients", err)
	}
	return clients, nil
}

func (r *repository) Get(ctx context.Context, id string) (*domain.Client, error) {
	var client domain.Client
	err := r.db.WithContext(ctx).Raw(
		`SELECT *
		 FROM clients
		 WHERE id = ?
		 LIMIT 1`,
		id,
	).Scan(&client).Error
	if err != nil {
		return nil, storage.Wrap("get_client", err)
	}
	if client.ID == "" {
		return nil, nil
	}
	return &client, nil
}

func (r *repository) Create(ctx context.Context, req domain.CreateClientRequest) (*domain.Client, error) {
	err := r.db.WithContext(ctx).Exec(
		`INSERT INTO clients (id, organizationId, name, code, address, emails, phone, website, registration_number, vatin)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.ID,
		req.OrganizationID,
		req.Name,
		req.Code,
		req.Address,
		req.Emails,
		req.Phone,
		req.Website,
		req.RegistrationNumber,
		req.VATIN,
	).Error
	if err != nil {
		return nil, storage.Wrap("create_client", err)
	}

	client, err := r.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, storage.NotFound("create_client")
	}
	return client, nil
}

// Update replaces every declared column with the patch value, NULLing fields
// the patch leaves unset.
func (r *repository) Update(ctx context.Context, id string, patch domain.UpdateClientRequest) (*domain.Client, error) {
	err := r.db.WithContext(ctx).Exec(
		`UPDATE clients
		 SET name = ?, code = ?, address = ?, emails = ?, phone = ?, website = ?, registration_number = ?, vatin = ?
		 WHERE id = ?`,
		patch.Name,
		patch.Code,
		patch.Address,
		patch.Emails,
		patch.Phone,
		patch.Website,
		patch.RegistrationNumber,
		patch.VATIN,
		id,
	).Error
	if err != nil {
		return nil, storage.Wrap("update_client", err)
	}

	client, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, storage.NotFound("update_client")
	}
	return client, nil
}

func (r *repository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM clients WHERE id = ?`, id)
	if result.Error != nil {
		return false, storage.Wrap("delete_client", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *repository) InvoiceCount(ctx context.Context, clientID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM invoices WHERE clientId = ?`,
		clientID,
	).Scan(&count).Error
	if err != nil {
		return 0, storage.Wrap("count_client_invoices", err)
	}
	return count, nil
}
