package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/area"
	"shieldtrack/internal/infrastructure/persistence/mappers"
	"shieldtrack/internal/infrastructure/persistence/models"
	db "shieldtrack/internal/shared/db"
	"shieldtrack/internal/shared/errors"
)

var allowedAreaOrderByFields = map[string]bool{
	"id":         true,
	"sid":        true,
	"name":       true,
	"client_id":  true,
	"created_at": true,
	"updated_at": true,
}

type AreaRepository struct {
	db     *gorm.DB
	mapper mappers.AreaMapper
}

func NewAreaRepository(db *gorm.DB) *AreaRepository {
	return &AreaRepository{
		db:     db,
		mapper: mappers.NewAreaMapper(),
	}
}

func (r *AreaRepository) Save(ctx context.Context, a *area.Area) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save area: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AreaRepository) Update(ctx context.Context, a *area.Area) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AreaModel{}).
		Where("id = ?", model.ID).
		Select("name", "is_active", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update area: %w", result.Error)
	}

	return nil
}

func (r *AreaRepository) FindByID(ctx context.Context, id uint) (*area.Area, error) {
	var model models.AreaModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("area not found")
		}
		return nil, fmt.Errorf("failed to find area: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AreaRepository) FindBySIDScoped(ctx context.Context, sid string, scope access.Scope) (*area.Area, error) {
	var model models.AreaModel
	tx := db.GetTxFromContext(ctx, r.db)

	// The area table's own id is the area column for scope purposes.
	err := tx.
		Scopes(scopeTenantRows(scope, "id")).
		Where("sid = ?", sid).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("area not found")
		}
		return nil, fmt.Errorf("failed to find area: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AreaRepository) List(ctx context.Context, filter area.Filter) ([]*area.Area, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.AreaModel{}).Scopes(scopeTenantRows(filter.Scope, "id"))

	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count areas: %w", err)
	}

	query = applyOrder(query, filter.SortBy, filter.SortOrder, allowedAreaOrderByFields)
	query = query.Limit(filter.Limit()).Offset(filter.Offset())

	var areaModels []models.AreaModel
	if err := query.Find(&areaModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list areas: %w", err)
	}

	areas := make([]*area.Area, len(areaModels))
	for i, model := range areaModels {
		a, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		areas[i] = a
	}

	return areas, total, nil
}

func (r *AreaRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.AreaModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete area: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("area not found")
	}
	return nil
}
