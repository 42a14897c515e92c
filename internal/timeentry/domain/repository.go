package domain

import "context"

type Repository interface {
	List(ctx context.Context, organizationID string) ([]TimeEntry, error)
	Get(ctx context.Context, id string) (*TimeEntry, error)
	Create(ctx context.Context, req CreateTimeEntryRequest) (*TimeEntry, error)
	Update(ctx context.Context, id string, patch UpdateTimeEntryRequest) (*TimeEntry, error)
	Delete(ctx context.Context, id string) (bool, error)
}
