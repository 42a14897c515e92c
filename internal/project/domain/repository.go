package domain

import "context"

type Repository interface {
	List(ctx context.Context, organizationID string) ([]Project, error)
	Get(ctx context.Context, id string) (*Project, error)
	Create(ctx context.Context, req CreateProjectRequest) (*Project, error)
	Update(ctx context.Context, id string, patch UpdateProjectRequest) (*Project, error)
	Delete(ctx context.Context, id string) (bool, error)
}
