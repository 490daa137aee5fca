package dto

import (
	"time"

	"shieldtrack/internal/domain/project"
)

type ProjectDTO struct {
	ID          uint       `json:"id"`
	SID         string     `json:"sid"`
	ClientID    uint       `json:"client_id"`
	AreaID      uint       `json:"area_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
}

func ToProjectDTO(p *project.Project) *ProjectDTO {
	if p == nil {
		return nil
	}
	return &ProjectDTO{
		ID:          p.ID(),
		SID:         p.SID(),
		ClientID:    p.ClientID(),
		AreaID:      p.AreaID(),
		Name:        p.Name(),
		Description: p.Description(),
		Status:      p.Status().String(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
		ClosedAt:    p.ClosedAt(),
	}
}

func ToProjectDTOs(projects []*project.Project) []*ProjectDTO {
	out := make([]*ProjectDTO, 0, len(projects))
	for _, p := range projects {
		out = append(out, ToProjectDTO(p))
	}
	return out
}
