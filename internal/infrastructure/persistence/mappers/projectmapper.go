package mappers

import (
	"time"

	"shieldtrack/internal/domain/project"
	"shieldtrack/internal/infrastructure/persistence/models"
)

// ProjectMapper handles the conversion between Project domain entities and
// persistence models.
type ProjectMapper interface {
	ToModel(p *project.Project) *models.ProjectModel
	ToDomain(model *models.ProjectModel) (*project.Project, error)
}

type ProjectMapperImpl struct{}

func NewProjectMapper() ProjectMapper {
	return &ProjectMapperImpl{}
}

func (m *ProjectMapperImpl) ToModel(p *project.Project) *models.ProjectModel {
	model := &models.ProjectModel{
		ID:          p.ID(),
		SID:         p.SID(),
		ClientID:    p.ClientID(),
		AreaID:      p.AreaID(),
		Name:        p.Name(),
		Description: p.Description(),
		Status:      p.Status().String(),
		CreatedAt:   p.CreatedAt().UnixMilli(),
		UpdatedAt:   p.UpdatedAt().UnixMilli(),
	}

	if p.ClosedAt() != nil {
		closed := p.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

func (m *ProjectMapperImpl) ToDomain(model *models.ProjectModel) (*project.Project, error) {
	var closedAt *time.Time
	if model.ClosedAt != nil {
		t := time.UnixMilli(*model.ClosedAt)
		closedAt = &t
	}

	return project.ReconstructProject(
		model.ID,
		model.SID,
		model.ClientID,
		model.AreaID,
		model.Name,
		model.Description,
		project.Status(model.Status),
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
		closedAt,
	)
}
