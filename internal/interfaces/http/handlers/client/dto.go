package client

import (
	"github.com/gin-gonic/gin"

	"shieldtrack/internal/application/client/usecases"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/shared/utils"
)

type CreateClientRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	TenantID string `json:"tenant_id" binding:"required,max=100"`
}

func (r *CreateClientRequest) ToCommand(principal access.Principal) usecases.CreateClientCommand {
	return usecases.CreateClientCommand{
		Principal: principal,
		Name:      r.Name,
		TenantID:  r.TenantID,
	}
}

type UpdateClientRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

type ListClientsRequest struct {
	Page       int
	PageSize   int
	Name       *string
	ActiveOnly bool
}

func (r *ListClientsRequest) ToQuery(principal access.Principal) usecases.ListClientsQuery {
	return usecases.ListClientsQuery{
		Principal:  principal,
		Page:       r.Page,
		PageSize:   r.PageSize,
		Name:       r.Name,
		ActiveOnly: r.ActiveOnly,
	}
}

func parseListClientsRequest(c *gin.Context) *ListClientsRequest {
	page, pageSize := utils.ParsePageQuery(c)

	req := &ListClientsRequest{
		Page:       page,
		PageSize:   pageSize,
		ActiveOnly: c.Query("active_only") == "true",
	}

	if name := c.Query("name"); name != "" {
		req.Name = &name
	}

	return req
}
