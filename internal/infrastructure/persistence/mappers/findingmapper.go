package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"shieldtrack/internal/domain/finding"
	"shieldtrack/internal/infrastructure/persistence/models"
)

// FindingMapper handles the conversion between Finding domain entities and
// persistence models.
type FindingMapper interface {
	ToModel(f *finding.Finding) *models.FindingModel
	ToDomain(model *models.FindingModel) (*finding.Finding, error)
}

type FindingMapperImpl struct{}

func NewFindingMapper() FindingMapper {
	return &FindingMapperImpl{}
}

func (m *FindingMapperImpl) ToModel(f *finding.Finding) *models.FindingModel {
	model := &models.FindingModel{
		ID:          f.ID(),
		SID:         f.SID(),
		ProjectID:   f.ProjectID(),
		Title:       f.Title(),
		Description: f.Description(),
		Severity:    f.Severity().String(),
		Status:      f.Status().String(),
		CloseReason: f.CloseReason(),
		CreatedAt:   f.CreatedAt().UnixMilli(),
		UpdatedAt:   f.UpdatedAt().UnixMilli(),
	}

	if tags := f.Tags(); len(tags) > 0 {
		tagsJSON, _ := json.Marshal(tags)
		model.Tags = datatypes.JSON(tagsJSON)
	}

	if f.ClosedAt() != nil {
		closed := f.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

func (m *FindingMapperImpl) ToDomain(model *models.FindingModel) (*finding.Finding, error) {
	var tags []string
	if len(model.Tags) > 0 {
		if err := json.Unmarshal(model.Tags, &tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal finding tags: %w", err)
		}
	}

	var closedAt *time.Time
	if model.ClosedAt != nil {
		t := time.UnixMilli(*model.ClosedAt)
		closedAt = &t
	}

	return finding.ReconstructFinding(
		model.ID,
		model.SID,
		model.ProjectID,
		model.Title,
		model.Description,
		finding.Severity(model.Severity),
		finding.Status(model.Status),
		model.CloseReason,
		tags,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
		closedAt,
	)
}
