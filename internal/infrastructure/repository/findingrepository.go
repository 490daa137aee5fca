package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/finding"
	"shieldtrack/internal/domain/project"
	"shieldtrack/internal/infrastructure/persistence/mappers"
	"shieldtrack/internal/infrastructure/persistence/models"
	db "shieldtrack/internal/shared/db"
	"shieldtrack/internal/shared/errors"
)

var allowedFindingOrderByFields = map[string]bool{
	"id":         true,
	"sid":        true,
	"title":      true,
	"severity":   true,
	"status":     true,
	"project_id": true,
	"created_at": true,
	"updated_at": true,
	"closed_at":  true,
}

// FindingRepository filters findings through their parent project. Findings
// carry only a project_id, so every scoped query resolves the visible project
// set first and restricts itself to it. An empty set short-circuits without
// touching the findings table.
type FindingRepository struct {
	db       *gorm.DB
	projects project.Repository
	mapper   mappers.FindingMapper
}

func NewFindingRepository(db *gorm.DB, projects project.Repository) *FindingRepository {
	return &FindingRepository{
		db:       db,
		projects: projects,
		mapper:   mappers.NewFindingMapper(),
	}
}

func (r *FindingRepository) Save(ctx context.Context, f *finding.Finding) error {
	model := r.mapper.ToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save finding: %w", err)
	}

	return f.SetID(model.ID)
}

func (r *FindingRepository) Update(ctx context.Context, f *finding.Finding) error {
	model := r.mapper.ToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.FindingModel{}).
		Where("id = ?", model.ID).
		Select("title", "description", "severity", "status", "close_reason", "tags", "closed_at", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update finding: %w", result.Error)
	}

	return nil
}

func (r *FindingRepository) FindByID(ctx context.Context, id uint) (*finding.Finding, error) {
	var model models.FindingModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("finding not found")
		}
		return nil, fmt.Errorf("failed to find finding: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *FindingRepository) FindBySIDScoped(ctx context.Context, sid string, scope access.Scope) (*finding.Finding, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Where("sid = ?", sid)

	if !scope.IsUnrestricted() {
		visibleIDs, err := r.projects.VisibleIDs(ctx, scope)
		if err != nil {
			return nil, err
		}
		if len(visibleIDs) == 0 {
			return nil, errors.NewNotFoundError("finding not found")
		}
		query = query.Where("project_id IN ?", visibleIDs)
	}

	var model models.FindingModel
	if err := query.First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("finding not found")
		}
		return nil, fmt.Errorf("failed to find finding: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *FindingRepository) List(ctx context.Context, filter finding.Filter) ([]*finding.Finding, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.FindingModel{})

	if !filter.Scope.IsUnrestricted() {
		visibleIDs, err := r.projects.VisibleIDs(ctx, filter.Scope)
		if err != nil {
			return nil, 0, err
		}
		if len(visibleIDs) == 0 {
			return []*finding.Finding{}, 0, nil
		}
		query = query.Where("project_id IN ?", visibleIDs)
	}

	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.Severity != nil {
		query = query.Where("severity = ?", filter.Severity.String())
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Tag != nil {
		// MySQL JSON containment on the tags array.
		query = query.Where("JSON_CONTAINS(tags, JSON_QUOTE(?))", *filter.Tag)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count findings: %w", err)
	}

	query = applyOrder(query, filter.SortBy, filter.SortOrder, allowedFindingOrderByFields)
	query = query.Limit(filter.Limit()).Offset(filter.Offset())

	var findingModels []models.FindingModel
	if err := query.Find(&findingModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list findings: %w", err)
	}

	findings := make([]*finding.Finding, len(findingModels))
	for i, model := range findingModels {
		f, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		findings[i] = f
	}

	return findings, total, nil
}

func (r *FindingRepository) CountByProject(ctx context.Context, projectID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.FindingModel{}).
		Where("project_id = ?", projectID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count findings: %w", err)
	}

	return count, nil
}

func (r *FindingRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.FindingModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete finding: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("finding not found")
	}
	return nil
}
