package repository

import (
	"context"

	"github.com/madisvain/upcount/internal/taxrate/domain"
	storage "github.com/madisvain/upcount/pkg/db"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, organizationID string) ([]domain.TaxRate, error) {
	var taxRates []domain.TaxRate
	err := r.db.WithContext(ctx).Raw(
		`SELECT *
		 FROM taxRates
		 WHERE organizationId = ?
		 ORDER BY name ASC`,
		organizationID,
	).Scan(&taxRates).Error
	if err != nil {
		return nil, storage.Wrap("list_tax_rates", err)
	}
	return taxRates, nil
}

func (r *repository) Get(ctx context.Context, id string) (*domain.TaxRate, error) {
	var taxRate domain.TaxRate
	err := r.db.WithContext(ctx).Raw(
		`SELECT *
		 FROM taxRates
		 WHERE id = ?
		 LIMIT 1`,
		id,
	).Scan(&taxRate).Error
	if err != nil {
		return nil, storage.Wrap("get_tax_rate", err)
	}
	if taxRate.ID == "" {
		return nil, nil
	}
	return &taxRate, nil
}

// Create inserts the row; when it claims the default flag, the previous
// default of the organization is cleared in the same transaction.
func (r *repository) Create(ctx context.Context, req domain.CreateTaxRateRequest) (*domain.TaxRate, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.IsDefault != nil && *req.IsDefault == 1 {
			err := tx.Exec(
				`UPDATE taxRates
				 SET isDefault = 0
				 WHERE organizationId = ? AND isDefault = 1`,
				req.OrganizationID,
			).Error
			if err != nil {
				return err
			}
		}

		return tx.Exec(
			`INSERT INTO taxRates (id, organizationId, name, description, percentage, isDefault)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			req.ID,
			req.OrganizationID,
			req.Name,
			req.Description,
			req.Percentage,
			req.IsDefault,
		).Error
	})
	if err != nil {
		return nil, storage.Wrap("create_tax_rate", err)
	}

	taxRate, err := r.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if taxRate == nil {
		return nil, storage.NotFound("create_tax_rate")
	}
	return taxRate, nil
}

// Update patches with COALESCE semantics. A patch claiming the default flag
// first resolves the row's organization inside the transaction, then clears
// the flag on its siblings.
func (r *repository) Update(ctx context.Context, id string, patch domain.UpdateTaxRateRequest) (*domain.TaxRate, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if patch.IsDefault != nil && *patch.IsDefault == 1 {
			var current domain.TaxRate
			err := tx.Raw(
				`SELECT * FROM taxRates WHERE id = ? LIMIT 1`,
				id,
			).Scan(&current).Error
			if err != nil {
				return err
			}
			if current.ID == "" {
				return gorm.ErrRecordNotFound
			}

			err = tx.Exec(
				`UPDATE taxRates
				 SET isDefault = 0
				 WHERE organizationId = ? AND id != ? AND isDefault = 1`,
				current.OrganizationID,
				id,
			).Error
			if err != nil {
				return err
			}
		}

		return tx.Exec(
			`UPDATE taxRates
			 SET name = COALESCE(?, name),
			     description = COALESCE(?, description),
			     percentage = COALESCE(?, percentage),
			     isDefault = COALESCE(?, isDefault)
			 WHERE id = ?`,
			patch.Name,
			patch.Description,
			patch.Percentage,
			patch.IsDefault,
			id,
		).Error
	})
	if err != nil {
		return nil, storage.Wrap("update_tax_rate", err)
	}

	taxRate, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if taxRate == nil {
		return nil, storage.NotFound("update_tax_rate")
	}
	return taxRate, nil
}

func (r *repository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM taxRates WHERE id = ?`, id)
	if result.Error != nil {
		return false, storage.Wrap("delete_tax_rate", result.Error)
	}
	return result.RowsAffected > 0, nil
}
