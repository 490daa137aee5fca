package mappers

import (
	"time"

	"shieldtrack/internal/domain/area"
	"shieldtrack/internal/infrastructure/persistence/models"
)

// AreaMapper handles the conversion between Area domain entities and
// persistence models, including area assignments.
type AreaMapper interface {
	ToModel(a *area.Area) *models.AreaModel
	ToDomain(model *models.AreaModel) (*area.Area, error)
	AssignmentToModel(as *area.Assignment) *models.AreaAssignmentModel
	AssignmentToDomain(model *models.AreaAssignmentModel) (*area.Assignment, error)
}

type AreaMapperImpl struct{}

func NewAreaMapper() AreaMapper {
	return &AreaMapperImpl{}
}

func (m *AreaMapperImpl) ToModel(a *area.Area) *models.AreaModel {
	return &models.AreaModel{
		ID:        a.ID(),
		SID:       a.SID(),
		ClientID:  a.ClientID(),
		Name:      a.Name(),
		IsActive:  a.IsActive(),
		CreatedAt: a.CreatedAt().UnixMilli(),
		UpdatedAt: a.UpdatedAt().UnixMilli(),
	}
}

func (m *AreaMapperImpl) ToDomain(model *models.AreaModel) (*area.Area, error) {
	return area.ReconstructArea(
		model.ID,
		model.SID,
		model.ClientID,
		model.Name,
		model.IsActive,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *AreaMapperImpl) AssignmentToModel(as *area.Assignment) *models.AreaAssignmentModel {
	return &models.AreaAssignmentModel{
		ID:        as.ID(),
		UserID:    as.UserID(),
		AreaID:    as.AreaID(),
		IsActive:  as.IsActive(),
		CreatedAt: as.CreatedAt().UnixMilli(),
		UpdatedAt: as.UpdatedAt().UnixMilli(),
	}
}

func (m *AreaMapperImpl) AssignmentToDomain(model *models.AreaAssignmentModel) (*area.Assignment, error) {
	return area.ReconstructAssignment(
		model.ID,
		model.UserID,
		model.AreaID,
		model.IsActive,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
