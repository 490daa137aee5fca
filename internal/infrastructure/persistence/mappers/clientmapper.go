package mappers

import (
	"time"

	"shieldtrack/internal/domain/client"
	"shieldtrack/internal/infrastructure/persistence/models"
)

// ClientMapper handles the conversion between Client domain entities and
// persistence models.
type ClientMapper interface {
	ToModel(c *client.Client) *models.ClientModel
	ToDomain(model *models.ClientModel) (*client.Client, error)
}

type ClientMapperImpl struct{}

func NewClientMapper() ClientMapper {
	return &ClientMapperImpl{}
}

func (m *ClientMapperImpl) ToModel(c *client.Client) *models.ClientModel {
	return &models.ClientModel{
		ID:        c.ID(),
		SID:       c.SID(),
		Name:      c.Name(),
		TenantID:  c.TenantID(),
		IsActive:  c.IsActive(),
		CreatedAt: c.CreatedAt().UnixMilli(),
		UpdatedAt: c.UpdatedAt().UnixMilli(),
	}
}

func (m *ClientMapperImpl) ToDomain(model *models.ClientModel) (*client.Client, error) {
	return client.ReconstructClient(
		model.ID,
		model.SID,
		model.Name,
		model.TenantID,
		model.IsActive,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
