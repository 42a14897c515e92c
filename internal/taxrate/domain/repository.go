package domain

import "context"

type Repository interface {
	List(ctx context.Context, organizationID string) ([]TaxRate, error)
	Get(ctx context.Context, id string) (*TaxRate, error)
	Create(ctx context.Context, req CreateTaxRateRequest) (*TaxRate, error)
	Update(ctx context.Context, id string, patch UpdateTaxRateRequest) (*TaxRate, error)
	Delete(ctx context.Context, id string) (bool, error)
}
