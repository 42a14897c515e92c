package repository

import (
	"context"

	"github.com/madisvain/upcount/internal/id"
	"github.com/madisvain/upcount/internal/invoice/domain"
	storage "github.com/madisvain/upcount/pkg/db"
	"gorm.io/gorm"
)

type repository struct {
	db  *gorm.DB
	ids id.Generator
}

func NewRepository(db *gorm.DB, ids id.Generator) domain.Repository {
	return &repository{db: db, ids: ids}
}

func (r *repository) List(ctx context.Context, organizationID string) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.WithContext(ctx).Raw(
		`SELECT
			invoices.*,
			clients.name AS clientName
		 FROM invoices
		 INNER JOIN clients ON invoices.clientId = clients.id
		 WHERE invoices.organizationId = ?
		 ORDER BY invoices.date DESC`,
		organizationID,
	).Scan(&invoices).Error
	if err != nil {
		return nil, storage.Wrap("list_invoices", err)
	}
	return invoices, nil
}

func (r *repository) Get(ctx context.Context, id string) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := r.db.WithContext(ctx).Raw(
		`SELECT
			invoices.*,
			clients.name AS clientName
		 FROM invoices
		 INNER JOIN clients ON invoices.clientId = clients.id
		 WHERE invoices.id = ?
		 LIMIT 1`,
		id,
	).Scan(&invoice).Error
	if err != nil {
		return nil, storage.Wrap("get_invoice", err)
	}
	if invoice.ID == "" {
		return nil, nil
	}
	return &invoice, nil
}

func (r *repository) LineItems(ctx context.Context, invoiceID string) ([]domain.InvoiceLineItem, error) {
	var items []domain.InvoiceLineItem
	err := r.db.WithContext(ctx).Raw(
		`SELECT *
		 FROM invoiceLineItems
		 WHERE invoiceId = ?
		 ORDER BY createdAt ASC, rowid ASC`,
		invoiceID,
	).Scan(&items).Error
	if err != nil {
		return nil, storage.Wrap("get_invoice_line_items", err)
	}
	return items, nil
}

// Create inserts the header and its line items and advances the owning
// organization's invoice-number counter by one, all in a single transaction.
func (r *repository) Create(ctx context.Context, req domain.CreateInvoiceRequest) (*domain.Invoice, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Exec(
			`INSERT INTO invoices (
				id, organizationId, number, state, clientId, date, dueDate,
				currency, customerNotes, total, taxTotal, subTotal
			)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			req.ID,
			req.OrganizationID,
			req.Number,
			req.State,
			req.ClientID,
			req.Date,
			req.DueDate,
			req.Currency,
			req.CustomerNotes,
			req.Total,
			req.TaxTotal,
			req.SubTotal,
		).Error
		if err != nil {
			return err
		}

		if err := r.insertLineItems(tx, req.ID, req.LineItems); err != nil {
			return err
		}

		return tx.Exec(
			`UPDATE organizations SET invoice_number_counter = invoice_number_counter + 1 WHERE id = ?`,
			req.OrganizationID,
		).Error
	})
	if err != nil {
		return nil, storage.Wrap("create_invoice", err)
	}

	invoice, err := r.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, storage.NotFound("create_invoice")
	}
	return invoice, nil
}

// Update patches the header with COALESCE semantics; a non-nil LineItems
// replaces the owned collection inside the same transaction. The counter is
// untouched.
func (r *repository) Update(ctx context.Context, id string, patch domain.UpdateInvoiceRequest) (*domain.Invoice, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Exec(
			`UPDATE invoices
			 SET number = COALESCE(?, number),
			     state = COALESCE(?, state),
			     clientId = COALESCE(?, clientId),
			     date = COALESCE(?, date),
			     dueDate = COALESCE(?, dueDate),
			     currency = COALESCE(?, currency),
			     customerNotes = COALESCE(?, customerNotes),
			     total = COALESCE(?, total),
			     taxTotal = COALESCE(?, taxTotal),
			     subTotal = COALESCE(?, subTotal)
			 WHERE id = ?`,
			patch.Number,
			patch.State,
			patch.ClientID,
			patch.Date,
			patch.DueDate,
			patch.Currency,
			patch.CustomerNotes,
			patch.Total,
			patch.TaxTotal,
			patch.SubTotal,
			id,
		).Error
		if err != nil {
			return err
		}

		if patch.LineItems == nil {
			return nil
		}

		if err := tx.Exec(`DELETE FROM invoiceLineItems WHERE invoiceId = ?`, id).Error; err != nil {
			return err
		}
		return r.insertLineItems(tx, id, patch.LineItems)
	})
	if err != nil {
		return nil, storage.Wrap("update_invoice", err)
	}

	invoice, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, storage.NotFound("update_invoice")
	}
	return invoice, nil
}

// Delete removes the line items first, then the header, in one transaction.
func (r *repository) Delete(ctx context.Context, id string) (bool, error) {
	var removed bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM invoiceLineItems WHERE invoiceId = ?`, id).Error; err != nil {
			return err
		}
		result := tx.Exec(`DELETE FROM invoices WHERE id = ?`, id)
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, storage.Wrap("delete_invoice", err)
	}
	return removed, nil
}

func (r *repository) insertLineItems(tx *gorm.DB, invoiceID string, items []domain.CreateInvoiceLineItemRequest) error {
	for _, item := range items {
		err := tx.Exec(
			`INSERT INTO invoiceLineItems (id, invoiceId, description, quantity, unitPrice, taxRate)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			r.ids.NewID(),
			invoiceID,
			item.Description,
			item.Quantity,
			item.UnitPrice,
			item.TaxRate,
		).Error
		if err != nil {
			return err
		}
	}
	return nil
}
