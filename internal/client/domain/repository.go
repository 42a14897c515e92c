package domain

import "context"

type Repository interface {
	List(ctx context.Context, organizationID string) ([]Client, error)
	Get(ctx context.Context, id string) (*Client, error)
	Create(ctx context.Context, req CreateClientRequest) (*Client, error)
	Update(ctx context.Context, id string, patch UpdateClientRequest) (*Client, error)
	Delete(ctx context.Context, id string) (bool, error)
	InvoiceCount(ctx context.Context, clientID string) (int64, error)
}
