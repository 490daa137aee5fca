package user

import (
	"github.com/gin-gonic/gin"

	"shieldtrack/internal/application/user/usecases"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/shared/utils"
)

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name" binding:"required,max=100"`
	Role     string `json:"role" binding:"required"`
	ClientID string `json:"client_id,omitempty"`
}

func (r *CreateUserRequest) ToCommand(principal access.Principal) usecases.CreateUserCommand {
	return usecases.CreateUserCommand{
		Principal: principal,
		Email:     r.Email,
		Password:  r.Password,
		Name:      r.Name,
		Role:      r.Role,
		ClientSID: r.ClientID,
	}
}

type UpdateUserRequest struct {
	Name     string  `json:"name" binding:"required,max=100"`
	Role     *string `json:"role,omitempty"`
	Password *string `json:"password,omitempty"`
}

type ListUsersRequest struct {
	Page       int
	PageSize   int
	Role       *string
	ActiveOnly bool
}

func (r *ListUsersRequest) ToQuery(principal access.Principal) usecases.ListUsersQuery {
	return usecases.ListUsersQuery{
		Principal:  principal,
		Page:       r.Page,
		PageSize:   r.PageSize,
		Role:       r.Role,
		ActiveOnly: r.ActiveOnly,
	}
}

func parseListUsersRequest(c *gin.Context) *ListUsersRequest {
	page, pageSize := utils.ParsePageQuery(c)

	req := &ListUsersRequest{
		Page:       page,
		PageSize:   pageSize,
		ActiveOnly: c.Query("active_only") == "true",
	}

	if role := c.Query("role"); role != "" {
		req.Role = &role
	}

	return req
}
