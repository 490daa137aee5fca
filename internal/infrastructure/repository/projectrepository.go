package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/project"
	"shieldtrack/internal/infrastructure/persistence/mappers"
	"shieldtrack/internal/infrastructure/persistence/models"
	db "shieldtrack/internal/shared/db"
	"shieldtrack/internal/shared/errors"
)

var allowedProjectOrderByFields = map[string]bool{
	"id":         true,
	"sid":        true,
	"name":       true,
	"status":     true,
	"client_id":  true,
	"area_id":    true,
	"created_at": true,
	"updated_at": true,
	"closed_at":  true,
}

type ProjectRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{
		db:     db,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *ProjectRepository) Save(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ProjectModel{}).
		Where("id = ?", model.ID).
		Select("name", "description", "status", "closed_at", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update project: %w", result.Error)
	}

	return nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id uint) (*project.Project, error) {
	var model models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("project not found")
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProjectRepository) FindBySIDScoped(ctx context.Context, sid string, scope access.Scope) (*project.Project, error) {
	var model models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Scopes(scopeTenantRows(scope, "area_id")).
		Where("sid = ?", sid).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("project not found")
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProjectRepository) List(ctx context.Context, filter project.Filter) ([]*project.Project, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ProjectModel{}).Scopes(scopeTenantRows(filter.Scope, "area_id"))

	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.AreaID != nil {
		query = query.Where("area_id = ?", *filter.AreaID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	query = applyOrder(query, filter.SortBy, filter.SortOrder, allowedProjectOrderByFields)
	query = query.Limit(filter.Limit()).Offset(filter.Offset())

	var projectModels []models.ProjectModel
	if err := query.Find(&projectModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]*project.Project, len(projectModels))
	for i, model := range projectModels {
		p, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		projects[i] = p
	}

	return projects, total, nil
}

// VisibleIDs returns the ids of every project the scope admits. Finding
// queries call this first and restrict themselves to the result, since
// findings carry no tenant columns of their own.
func (r *ProjectRepository) VisibleIDs(ctx context.Context, scope access.Scope) ([]uint, error) {
	if scope.IsEmpty() {
		return nil, nil
	}

	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.ProjectModel{}).
		Scopes(scopeTenantRows(scope, "area_id")).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to resolve visible projects: %w", err)
	}

	return ids, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ProjectModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("project not found")
	}
	return nil
}
