package finding

import (
	"github.com/gin-gonic/gin"

	"shieldtrack/internal/application/finding/usecases"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/shared/utils"
)

type CreateFindingRequest struct {
	ProjectID   string   `json:"project_id" binding:"required"`
	Title       string   `json:"title" binding:"required,max=300"`
	Description string   `json:"description" binding:"max=20000"`
	Severity    string   `json:"severity" binding:"required,oneof=info low medium high critical"`
	Tags        []string `json:"tags,omitempty"`
}

func (r *CreateFindingRequest) ToCommand(principal access.Principal) usecases.CreateFindingCommand {
	return usecases.CreateFindingCommand{
		Principal:   principal,
		ProjectSID:  r.ProjectID,
		Title:       r.Title,
		Description: r.Description,
		Severity:    r.Severity,
		Tags:        r.Tags,
	}
}

type UpdateFindingRequest struct {
	Title       string   `json:"title" binding:"required,max=300"`
	Description string   `json:"description" binding:"max=20000"`
	Severity    string   `json:"severity" binding:"required,oneof=info low medium high critical"`
	Tags        []string `json:"tags,omitempty"`
}

type CloseFindingRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type ListFindingsRequest struct {
	Page      int
	PageSize  int
	ProjectID *string
	Severity  *string
	Status    *string
	Tag       *string
}

func (r *ListFindingsRequest) ToQuery(principal access.Principal) usecases.ListFindingsQuery {
	return usecases.ListFindingsQuery{
		Principal:  principal,
		Page:       r.Page,
		PageSize:   r.PageSize,
		ProjectSID: r.ProjectID,
		Severity:   r.Severity,
		Status:     r.Status,
		Tag:        r.Tag,
	}
}

func parseListFindingsRequest(c *gin.Context) *ListFindingsRequest {
	page, pageSize := utils.ParsePageQuery(c)

	req := &ListFindingsRequest{
		Page:     page,
		PageSize: pageSize,
	}

	if projectID := c.Query("project_id"); projectID != "" {
		req.ProjectID = &projectID
	}
	if severity := c.Query("severity"); severity != "" {
		req.Severity = &severity
	}
	if status := c.Query("status"); status != "" {
		req.Status = &status
	}
	if tag := c.Query("tag"); tag != "" {
		req.Tag = &tag
	}

	return req
}
