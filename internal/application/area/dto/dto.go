package dto

import (
	"time"

	"shieldtrack/internal/domain/area"
)

type AreaDTO struct {
	ID        uint      `json:"id"`
	SID       string    `json:"sid"`
	ClientID  uint      `json:"client_id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AssignmentDTO struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	AreaID    uint      `json:"area_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToAreaDTO(a *area.Area) *AreaDTO {
	if a == nil {
		return nil
	}
	return &AreaDTO{
		ID:        a.ID(),
		SID:       a.SID(),
		ClientID:  a.ClientID(),
		Name:      a.Name(),
		IsActive:  a.IsActive(),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}

func ToAreaDTOs(areas []*area.Area) []*AreaDTO {
	out := make([]*AreaDTO, 0, len(areas))
	for _, a := range areas {
		out = append(out, ToAreaDTO(a))
	}
	return out
}

func ToAssignmentDTO(as *area.Assignment) *AssignmentDTO {
	if as == nil {
		return nil
	}
	return &AssignmentDTO{
		ID:        as.ID(),
		UserID:    as.UserID(),
		AreaID:    as.AreaID(),
		IsActive:  as.IsActive(),
		CreatedAt: as.CreatedAt(),
		UpdatedAt: as.UpdatedAt(),
	}
}

func ToAssignmentDTOs(assignments []*area.Assignment) []*AssignmentDTO {
	out := make([]*AssignmentDTO, 0, len(assignments))
	for _, as := range assignments {
		out = append(out, ToAssignmentDTO(as))
	}
	return out
}
