package repository

import (
	"context"

	"github.com/madisvain/upcount/internal/timeentry/domain"
	storage "github.com/madisvain/upcount/pkg/db"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, organizationID string) ([]domain.TimeEntry, error) {
	var entries []domain.TimeEntry
	err := r.db.WithContext(ctx).Raw(
		`SELECT t.*, c.name AS clientName
		 FROM timeEntries t
		 LEFT JOIN clients c ON t.clientId = c.id
		 WHERE t.organizationId = ?
		 ORDER BY t.startTime DESC`,
		organizationID,
	).Scan(&entries).Error
	if err != nil {
		return nil, storage.Wrap("list_time_entries", err)
	}
	return entries, nil
}

func (r *repository) Get(ctx context.Context, id string) (*domain.TimeEntry, error) {
	var entry domain.TimeEntry
	err := r.db.WithContext(ctx).Raw(
		`SELECT t.*, c.name AS clientName
		 FROM timeEntries t
		 LEFT JOIN clients c ON t.clientId = c.id
		 WHERE t.id = ?
		 LIMIT 1`,
		id,
	).Scan(&entry).Error
	if err != nil {
		return nil, storage.Wrap("get_time_entry", err)
	}
	if entry.ID == "" {
		return nil, nil
	}
	return &entry, nil
}

func (r *repository) Create(ctx context.Context, req domain.CreateTimeEntryRequest) (*domain.TimeEntry, error) {
	err := r.db.WithContext(ctx).Exec(
		`INSERT INTO timeEntries (id, organizationId, clientId, description, startTime, endTime, duration, tags, isBillable, hourlyRate)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.ID,
		req.OrganizationID,
		req.ClientID,
		req.Description,
		req.StartTime,
		req.EndTime,
		req.Duration,
		req.Tags,
		req.IsBillable,
		req.HourlyRate,
	).Error
	if err != nil {
		return nil, storage.Wrap("create_time_entry", err)
	}

	entry, err := r.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, storage.NotFound("create_time_entry")
	}
	return entry, nil
}

func (r *repository) Update(ctx context.Context, id string, patch domain.UpdateTimeEntryRequest) (*domain.TimeEntry, error) {
	err := r.db.WithContext(ctx).Exec(
		`UPDATE timeEntries
		 SET clientId = COALESCE(?, clientId),
		     description = COALESCE(?, description),
		     startTime = COALESCE(?, startTime),
		     endTime = COALESCE(?, endTime),
		     duration = COALESCE(?, duration),
		     tags = COALESCE(?, tags),
		     isBillable = COALESCE(?, isBillable),
		     hourlyRate = COALESCE(?, hourlyRate)
		 WHERE id = ?`,
		patch.ClientID,
		patch.Description,
		patch.StartTime,
		patch.EndTime,
		patch.Duration,
		patch.Tags,
		patch.IsBillable,
		patch.HourlyRate,
		id,
	).Error
	if err != nil {
		return nil, storage.Wrap("update_time_entry", err)
	}

	entry, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, storage.NotFound("update_time_entry")
	}
	return entry, nil
}

func (r *repository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM timeEntries WHERE id = ?`, id)
	if result.Error != nil {
		return false, storage.Wrap("delete_time_entry", result.Error)
	}
	return result.RowsAffected > 0, nil
}
