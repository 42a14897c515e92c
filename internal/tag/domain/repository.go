package domain

import "context"

type Repository interface {
	List(ctx context.Context, organizationID string) ([]Tag, error)
	Get(ctx context.Context, id string) (*Tag, error)
	Create(ctx context.Context, req CreateTagRequest) (*Tag, error)
	Update(ctx context.Context, id string, patch UpdateTagRequest) (*Tag, error)
	Delete(ctx context.Context, id string) (bool, error)
}
