package project

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shieldtrack/internal/application/project/usecases"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/utils"
)

type CreateProjectRequest struct {
	AreaID      string `json:"area_id" binding:"required"`
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=5000"`
}

func (r *CreateProjectRequest) ToCommand(principal access.Principal) usecases.CreateProjectCommand {
	return usecases.CreateProjectCommand{
		Principal:   principal,
		AreaSID:     r.AreaID,
		Name:        r.Name,
		Description: r.Description,
	}
}

type UpdateProjectRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=5000"`
}

type ListProjectsRequest struct {
	Page     int
	PageSize int
	ClientID *uint
	AreaID   *uint
	Status   *string
}

func (r *ListProjectsRequest) ToQuery(principal access.Principal) usecases.ListProjectsQuery {
	return usecases.ListProjectsQuery{
		Principal: principal,
		Page:      r.Page,
		PageSize:  r.PageSize,
		ClientID:  r.ClientID,
		AreaID:    r.AreaID,
		Status:    r.Status,
	}
}

func parseListProjectsRequest(c *gin.Context) (*ListProjectsRequest, error) {
	page, pageSize := utils.ParsePageQuery(c)

	req := &ListProjectsRequest{
		Page:     page,
		PageSize: pageSize,
	}

	if clientID, err := parseUintQuery(c, "client_id"); err != nil {
		return nil, err
	} else if clientID != nil {
		req.ClientID = clientID
	}

	if areaID, err := parseUintQuery(c, "area_id"); err != nil {
		return nil, err
	} else if areaID != nil {
		req.AreaID = areaID
	}

	if status := c.Query("status"); status != "" {
		req.Status = &status
	}

	return req, nil
}

func parseUintQuery(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return nil, errors.NewValidationError("invalid " + name + " filter")
	}

	parsed := uint(value)
	return &parsed, nil
}
