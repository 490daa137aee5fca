package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"shieldtrack/internal/domain/area"
	"shieldtrack/internal/infrastructure/persistence/mappers"
	"shieldtrack/internal/infrastructure/persistence/models"
	db "shieldtrack/internal/shared/db"
	"shieldtrack/internal/shared/errors"
)

type AssignmentRepository struct {
	db     *gorm.DB
	mapper mappers.AreaMapper
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{
		db:     db,
		mapper: mappers.NewAreaMapper(),
	}
}

func (r *AssignmentRepository) Save(ctx context.Context, as *area.Assignment) error {
	model := r.mapper.AssignmentToModel(as)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save assignment: %w", err)
	}

	return as.SetID(model.ID)
}

func (r *AssignmentRepository) Update(ctx context.Context, as *area.Assignment) error {
	model := r.mapper.AssignmentToModel(as)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AreaAssignmentModel{}).
		Where("id = ?", model.ID).
		Select("is_active", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update assignment: %w", result.Error)
	}

	return nil
}

func (r *AssignmentRepository) FindByUserAndArea(ctx context.Context, userID, areaID uint) (*area.Assignment, error) {
	var model models.AreaAssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("user_id = ? AND area_id = ?", userID, areaID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("assignment not found")
		}
		return nil, fmt.Errorf("failed to find assignment: %w", err)
	}

	return r.mapper.AssignmentToDomain(&model)
}

// ActiveAreaIDsForUser runs on every authenticated request during principal
// construction, so it selects a single column and skips domain mapping.
func (r *AssignmentRepository) ActiveAreaIDsForUser(ctx context.Context, userID uint) ([]uint, error) {
	var areaIDs []uint
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.AreaAssignmentModel{}).
		Where("user_id = ?", userID).
		Scopes(db.ActiveOnly()).
		Pluck("area_id", &areaIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load area assignments: %w", err)
	}

	return areaIDs, nil
}

func (r *AssignmentRepository) ListForArea(ctx context.Context, areaID uint) ([]*area.Assignment, error) {
	var assignmentModels []models.AreaAssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("area_id = ?", areaID).
		Order("created_at ASC").
		Find(&assignmentModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	assignments := make([]*area.Assignment, len(assignmentModels))
	for i, model := range assignmentModels {
		as, err := r.mapper.AssignmentToDomain(&model)
		if err != nil {
			return nil, err
		}
		assignments[i] = as
	}

	return assignments, nil
}
