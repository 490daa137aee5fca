package dto

import (
	"time"

	"shieldtrack/internal/domain/finding"
)

type FindingDTO struct {
	ID          uint       `json:"id"`
	SID         string     `json:"sid"`
	ProjectID   uint       `json:"project_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Severity    string     `json:"severity"`
	Status      string     `json:"status"`
	CloseReason string     `json:"close_reason,omitempty"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
}

type FindingHTMLDTO struct {
	SID   string `json:"sid"`
	Title string `json:"title"`
	HTML  string `json:"html"`
}

func ToFindingDTO(f *finding.Finding) *FindingDTO {
	if f == nil {
		return nil
	}
	return &FindingDTO{
		ID:          f.ID(),
		SID:         f.SID(),
		ProjectID:   f.ProjectID(),
		Title:       f.Title(),
		Description: f.Description(),
		Severity:    f.Severity().String(),
		Status:      f.Status().String(),
		CloseReason: f.CloseReason(),
		Tags:        f.Tags(),
		CreatedAt:   f.CreatedAt(),
		UpdatedAt:   f.UpdatedAt(),
		ClosedAt:    f.ClosedAt(),
	}
}

func ToFindingDTOs(findings []*finding.Finding) []*FindingDTO {
	out := make([]*FindingDTO, 0, len(findings))
	for _, f := range findings {
		out = append(out, ToFindingDTO(f))
	}
	return out
}
