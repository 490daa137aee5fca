package area

import (
	"github.com/gin-gonic/gin"

	"shieldtrack/internal/application/area/usecases"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/shared/utils"
)

type CreateAreaRequest struct {
	ClientID string `json:"client_id" binding:"required"`
	Name     string `json:"name" binding:"required,max=200"`
}

func (r *CreateAreaRequest) ToCommand(principal access.Principal) usecases.CreateAreaCommand {
	return usecases.CreateAreaCommand{
		Principal: principal,
		ClientSID: r.ClientID,
		Name:      r.Name,
	}
}

type UpdateAreaRequest struct {
	Name   string `json:"name" binding:"required,max=200"`
	Active *bool  `json:"active,omitempty"`
}

type AssignUserRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type ListAreasRequest struct {
	Page       int
	PageSize   int
	ClientID   *string
	ActiveOnly bool
}

func (r *ListAreasRequest) ToQuery(principal access.Principal) usecases.ListAreasQuery {
	return usecases.ListAreasQuery{
		Principal:  principal,
		Page:       r.Page,
		PageSize:   r.PageSize,
		ClientSID:  r.ClientID,
		ActiveOnly: r.ActiveOnly,
	}
}

func parseListAreasRequest(c *gin.Context) *ListAreasRequest {
	page, pageSize := utils.ParsePageQuery(c)

	req := &ListAreasRequest{
		Page:       page,
		PageSize:   pageSize,
		ActiveOnly: c.Query("active_only") == "true",
	}

	if clientID := c.Query("client_id"); clientID != "" {
		req.ClientID = &clientID
	}

	return req
}
