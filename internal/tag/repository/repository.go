package repository

import (
	"context"

	"github.com/madisvain/upcount/internal/tag/domain"
	storage "github.com/madisvain/upcount/pkg/db"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, organizationID string) ([]domain.Tag, error) {
	var tags []domain.Tag
	err := r.db.WithContext(ctx).Raw(
		`SELECT * FROM tags WHERE organizationId = ? ORDER BY name ASC`,
		organizationID,
	).Scan(&tags).Error
	if err != nil {
		return nil, storage.Wrap("list_tags", err)
	}
	return tags, nil
}

func (r *repository) Get(ctx context.Context, id string) (*domain.Tag, error) {
	var tag domain.Tag
	err := r.db.WithContext(ctx).Raw(
		`SELECT * FROM tags WHERE id = ? LIMIT 1`,
		id,
	).Scan(&tag).Error
	if err != nil {
		return nil, storage.Wrap("get_tag", err)
	}
	if tag.ID == "" {
		return nil, nil
	}
	return &tag, nil
}

func (r *repository) Create(ctx context.Context, req domain.CreateTagRequest) (*domain.Tag, error) {
	err := r.db.WithContext(ctx).Exec(
		`INSERT INTO tags (id, organizationId, name, color) VALUES (?, ?, ?, ?)`,
		req.ID,
		req.OrganizationID,
		req.Name,
		req.Color,
	).Error
	if err != nil {
		return nil, storage.Wrap("create_tag", err)
	}

	tag, err := r.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, storage.NotFound("create_tag")
	}
	return tag, nil
}

func (r *repository) Update(ctx context.Context, id string, patch domain.UpdateTagRequest) (*domain.Tag, error) {
	err := r.db.WithContext(ctx).Exec(
		`UPDATE tags SET name = COALESCE(?, name), color = COALESCE(?, color) WHERE id = ?`,
		patch.Name,
		patch.Color,
		id,
	).Error
	if err != nil {
		return nil, storage.Wrap("update_tag", err)
	}

	tag, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, storage.NotFound("update_tag")
	}
	return tag, nil
}

func (r *repository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM tags WHERE id = ?`, id)
	if result.Error != nil {
		return false, storage.Wrap("delete_tag", result.Error)
	}
	return result.RowsAffected > 0, nil
}
