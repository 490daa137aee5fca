package project

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shieldtrack/internal/application/project/usecases"
	"shieldtrack/internal/interfaces/http/middleware"
	"shieldtrack/internal/shared/id"
	"shieldtrack/internal/shared/logger"
	"shieldtrack/internal/shared/utils"
)

type ProjectHandler struct {
	createProjectUC  usecases.CreateProjectExecutor
	getProjectUC     usecases.GetProjectExecutor
	listProjectsUC   usecases.ListProjectsExecutor
	updateProjectUC  usecases.UpdateProjectExecutor
	closeProjectUC   usecases.CloseProjectExecutor
	archiveProjectUC usecases.ArchiveProjectExecutor
	deleteProjectUC  usecases.DeleteProjectExecutor
	logger           logger.Interface
}

func NewProjectHandler(
	createProjectUC usecases.CreateProjectExecutor,
	getProjectUC usecases.GetProjectExecutor,
	listProjectsUC usecases.ListProjectsExecutor,
	updateProjectUC usecases.UpdateProjectExecutor,
	closeProjectUC usecases.CloseProjectExecutor,
	archiveProjectUC usecases.ArchiveProjectExecutor,
	deleteProjectUC usecases.DeleteProjectExecutor,
) *ProjectHandler {
	return &ProjectHandler{
		createProjectUC:  createProjectUC,
		getProjectUC:     getProjectUC,
		listProjectsUC:   listProjectsUC,
		updateProjectUC:  updateProjectUC,
		closeProjectUC:   closeProjectUC,
		archiveProjectUC: archiveProjectUC,
		deleteProjectUC:  deleteProjectUC,
		logger:           logger.NewLogger(),
	}
}

// CreateProject handles POST /projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create project", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.createProjectUC.Execute(c.Request.Context(), req.ToCommand(principal))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Project created successfully")
}

// GetProject handles GET /projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixProject, "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.getProjectUC.Execute(c.Request.Context(), usecases.GetProjectQuery{
		Principal: principal,
		SID:       sid,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListProjects handles GET /projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	req, err := parseListProjectsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.listProjectsUC.Execute(c.Request.Context(), req.ToQuery(principal))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Projects, result.Total, result.Page, result.PageSize)
}

// UpdateProject handles PUT /projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixProject, "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update project", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.updateProjectUC.Execute(c.Request.Context(), usecases.UpdateProjectCommand{
		Principal:   principal,
		SID:         sid,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Project updated successfully", result)
}

// CloseProject handles POST /projects/:id/close
func (h *ProjectHandler) CloseProject(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixProject, "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.closeProjectUC.Execute(c.Request.Context(), usecases.CloseProjectCommand{
		Principal: principal,
		SID:       sid,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Project closed successfully", result)
}

// ArchiveProject handles POST /projects/:id/archive
func (h *ProjectHandler) ArchiveProject(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixProject, "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.archiveProjectUC.Execute(c.Request.Context(), usecases.ArchiveProjectCommand{
		Principal: principal,
		SID:       sid,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Project archived successfully", result)
}

// DeleteProject handles DELETE /projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixProject, "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	err = h.deleteProjectUC.Execute(c.Request.Context(), usecases.DeleteProjectCommand{
		Principal: principal,
		SID:       sid,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
