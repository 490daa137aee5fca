package area

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shieldtrack/internal/application/area/usecases"
	"shieldtrack/internal/interfaces/http/middleware"
	"shieldtrack/internal/shared/id"
	"shieldtrack/internal/shared/logger"
	"shieldtrack/internal/shared/utils"
)

type AreaHandler struct {
	createAreaUC       usecases.CreateAreaExecutor
	getAreaUC          usecases.GetAreaExecutor
	listAreasUC        usecases.ListAreasExecutor
	updateAreaUC       usecases.UpdateAreaExecutor
	assignUserUC       usecases.AssignUserExecutor
	revokeAssignmentUC usecases.RevokeAssignmentExecutor
	listAssignmentsUC  usecases.ListAssignmentsExecutor
	logger             logger.Interface
}

func NewAreaHandler(
	createAreaUC usecases.CreateAreaExecutor,
	getAreaUC usecases.GetAreaExecutor,
	listAreasUC usecases.ListAreasExecutor,
	updateAreaUC usecases.UpdateAreaExecutor,
	assignUserUC usecases.AssignUserExecutor,
	revokeAssignmentUC usecases.RevokeAssignmentExecutor,
	listAssignmentsUC usecases.ListAssignmentsExecutor,
) *AreaHandler {
	return &AreaHandler{
		createAreaUC:       createAreaUC,
		getAreaUC:          getAreaUC,
		listAreasUC:        listAreasUC,
		updateAreaUC:       updateAreaUC,
		assignUserUC:       assignUserUC,
		revokeAssignmentUC: revokeAssignmentUC,
		listAssignmentsUC:  listAssignmentsUC,
		logger:             logger.NewLogger(),
	}
}

// CreateArea handles POST /areas
func (h *AreaHandler) CreateArea(c *gin.Context) {
	var req CreateAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create area", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.createAreaUC.Execute(c.Request.Context(), req.ToCommand(principal))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Area created successfully")
}

// GetArea handles GET /areas/:id
func (h *AreaHandler) GetArea(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixArea, "area")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.getAreaUC.Execute(c.Request.Context(), usecases.GetAreaQuery{
		Principal: principal,
		SID:       sid,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListAreas handles GET /areas
func (h *AreaHandler) ListAreas(c *gin.Context) {
	req := parseListAreasRequest(c)

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.listAreasUC.Execute(c.Request.Context(), req.ToQuery(principal))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Areas, result.Total, result.Page, result.PageSize)
}

// UpdateArea handles PUT /areas/:id
func (h *AreaHandler) UpdateArea(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixArea, "area")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update area", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.updateAreaUC.Execute(c.Request.Context(), usecases.UpdateAreaCommand{
		Principal: principal,
		SID:       sid,
		Name:      req.Name,
		Active:    req.Active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Area updated successfully", result)
}

// AssignUser handles POST /areas/:id/assignments
func (h *AreaHandler) AssignUser(c *gin.Context) {
	areaSID, err := utils.ParseSIDParam(c, "id", id.PrefixArea, "area")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for assign user", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.assignUserUC.Execute(c.Request.Context(), usecases.AssignUserCommand{
		Principal: principal,
		AreaSID:   areaSID,
		UserSID:   req.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User assigned successfully")
}

// RevokeAssignment handles DELETE /areas/:id/assignments/:user_id
func (h *AreaHandler) RevokeAssignment(c *gin.Context) {
	areaSID, err := utils.ParseSIDParam(c, "id", id.PrefixArea, "area")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userSID, err := utils.ParseSIDParam(c, "user_id", id.PrefixUser, "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	err = h.revokeAssignmentUC.Execute(c.Request.Context(), usecases.RevokeAssignmentCommand{
		Principal: principal,
		AreaSID:   areaSID,
		UserSID:   userSID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListAssignments handles GET /areas/:id/assignments
func (h *AreaHandler) ListAssignments(c *gin.Context) {
	areaSID, err := utils.ParseSIDParam(c, "id", id.PrefixArea, "area")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.listAssignmentsUC.Execute(c.Request.Context(), usecases.ListAssignmentsQuery{
		Principal: principal,
		AreaSID:   areaSID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
