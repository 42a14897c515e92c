package domain

import "context"

type Repository interface {
	List(ctx context.Context, organizationID string) ([]Invoice, error)
	Get(ctx context.Context, id string) (*Invoice, error)
	LineItems(ctx context.Context, invoiceID string) ([]InvoiceLineItem, error)
	Create(ctx context.Context, req CreateInvoiceRequest) (*Invoice, error)
	Update(ctx context.Context, id string, patch UpdateInvoiceRequest) (*Invoice, error)
	Delete(ctx context.Context, id string) (bool, error)
}
