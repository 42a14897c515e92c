package repository

import (
	"context"

	"github.com/madisvain/upcount/internal/project/domain"
	storage "github.com/madisvain/upcount/pkg/db"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, organizationID string) ([]domain.Project, error) {
	var projects []domain.Project
	err := r.db.WithContext(ctx).Raw(
		`SELECT
			projects.*,
			clients.name AS clientName
		 FROM projects
		 LEFT JOIN clients ON projects.clientId = clients.id
		 WHERE projects.organizationId = ?
		 ORDER BY projects.name ASC`,
		organizationID,
	).Scan(&projects).Error
	if err != nil {
		return nil, storage.Wrap("list_projects", err)
	}
	return projects, nil
}

func (r *repository) Get(ctx context.Context, id string) (*domain.Project, error) {
	var project domain.Project
	err := r.db.WithContext(ctx).Raw(
		`SELECT *
		 FROM projects
		 WHERE id = ?
		 LIMIT 1`,
		id,
	).Scan(&project).Error
	if err != nil {
		return nil, storage.Wrap("get_project", err)
	}
	if project.ID == "" {
		return nil, nil
	}
	return &project, nil
}

func (r *repository) Create(ctx context.Context, req domain.CreateProjectRequest) (*domain.Project, error) {
	err := r.db.WithContext(ctx).Exec(
		`INSERT INTO projects (id, organizationId, name, clientId, startDate, endDate, archivedAt)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		req.ID,
		req.OrganizationID,
		req.Name,
		req.ClientID,
		req.StartDate,
		req.EndDate,
		req.ArchivedAt,
	).Error
	if err != nil {
		return nil, storage.Wrap("create_project", err)
	}

	project, err := r.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, storage.NotFound("create_project")
	}
	return project, nil
}

// Update issues one statement per present field to keep the code path simple.
func (r *repository) Update(ctx context.Context, id string, patch domain.UpdateProjectRequest) (*domain.Project, error) {
	writes := []struct {
		column string
		value  any
		set    bool
	}{
		{"name", patch.Name, patch.Name != nil},
		{"clientId", patch.ClientID, patch.ClientID != nil},
		{"startDate", patch.StartDate, patch.StartDate != nil},
		{"endDate", patch.EndDate, patch.EndDate != nil},
		{"archivedAt", patch.ArchivedAt, patch.ArchivedAt != nil},
	}

	for _, write := range writes {
		if !write.set {
			continue
		}
		err := r.db.WithContext(ctx).Exec(
			`UPDATE projects SET `+write.column+` = ? WHERE id = ?`,
			write.value,
			id,
		).Error
		if err != nil {
			return nil, storage.Wrap("update_project", err)
		}
	}

	project, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, storage.NotFound("update_project")
	}
	return project, nil
}

func (r *repository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM projects WHERE id = ?`, id)
	if result.Error != nil {
		return false, storage.Wrap("delete_project", result.Error)
	}
	return result.RowsAffected > 0, nil
}
