package dto

import (
	"time"

	"shieldtrack/internal/domain/client"
)

type ClientDTO struct {
	ID        uint      `json:"id"`
	SID       string    `json:"sid"`
	Name      string    `json:"name"`
	TenantID  string    `json:"tenant_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToClientDTO(c *client.Client) *ClientDTO {
	if c == nil {
		return nil
	}
	return &ClientDTO{
		ID:        c.ID(),
		SID:       c.SID(),
		Name:      c.Name(),
		TenantID:  c.TenantID(),
		IsActive:  c.IsActive(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func ToClientDTOs(clients []*client.Client) []*ClientDTO {
	out := make([]*ClientDTO, 0, len(clients))
	for _, c := range clients {
		out = append(out, ToClientDTO(c))
	}
	return out
}
