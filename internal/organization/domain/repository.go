package domain

import "context"

type Repository interface {
	List(ctx context.Context) ([]Organization, error)
	Get(ctx context.Context, id string) (*Organization, error)
	Create(ctx context.Context, req CreateOrganizationRequest) (*Organization, error)
	Update(ctx context.Context, id string, patch UpdateOrganizationRequest) (*Organization, error)
	Delete(ctx context.Context, id string) (bool, error)
}
