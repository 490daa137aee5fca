package finding

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shieldtrack/internal/application/finding/usecases"
	"shieldtrack/internal/interfaces/http/middleware"
	"shieldtrack/internal/shared/id"
	"shieldtrack/internal/shared/logger"
	"shieldtrack/internal/shared/utils"
)

type FindingHandler struct {
	createFindingUC  usecases.CreateFindingExecutor
	getFindingUC     usecases.GetFindingExecutor
	listFindingsUC   usecases.ListFindingsExecutor
	updateFindingUC  usecases.UpdateFindingExecutor
	confirmFindingUC usecases.ConfirmFindingExecutor
	closeFindingUC   usecases.CloseFindingExecutor
	deleteFindingUC  usecases.DeleteFindingExecutor
	renderHTMLUC     usecases.RenderFindingHTMLExecutor
	logger           logger.Interface
}

func NewFindingHandler(
	createFindingUC usecases.CreateFindingExecutor,
	getFindingUC usecases.GetFindingExecutor,
	listFindingsUC usecases.ListFindingsExecutor,
	updateFindingUC usecases.UpdateFindingExecutor,
	confirmFindingUC usecases.ConfirmFindingExecutor,
	closeFindingUC usecases.CloseFindingExecutor,
	deleteFindingUC usecases.DeleteFindingExecutor,
	renderHTMLUC usecases.RenderFindingHTMLExecutor,
) *FindingHandler {
	return &FindingHandler{
		createFindingUC:  createFindingUC,
		getFindingUC:     getFindingUC,
		listFindingsUC:   listFindingsUC,
		updateFindingUC:  updateFindingUC,
		confirmFindingUC: confirmFindingUC,
		closeFindingUC:   closeFindingUC,
		deleteFindingUC:  deleteFindingUC,
		renderHTMLUC:     renderHTMLUC,
		logger:           logger.NewLogger(),
	}
}

// CreateFinding handles POST /findings
func (h *FindingHandler) CreateFinding(c *gin.Context) {
	var req CreateFindingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create finding", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.createFindingUC.Execute(c.Request.Context(), req.ToCommand(principal))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Finding created successfully")
}

// GetFinding handles GET /findings/:id
func (h *FindingHandler) GetFinding(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixFinding, "finding")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.getFindingUC.Execute(c.Request.Context(), usecases.GetFindingQuery{
		Principal: principal,
		SID:       sid,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListFindings handles GET /findings
func (h *FindingHandler) ListFindings(c *gin.Context) {
	req := parseListFindingsRequest(c)

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.listFindingsUC.Execute(c.Request.Context(), req.ToQuery(principal))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Findings, result.Total, result.Page, result.PageSize)
}

// UpdateFinding handles PUT /findings/:id
func (h *FindingHandler) UpdateFinding(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixFinding, "finding")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateFindingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update finding", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.updateFindingUC.Execute(c.Request.Context(), usecases.UpdateFindingCommand{
		Principal:   principal,
		SID:         sid,
		Title:       req.Title,
		Description: req.Description,
		Severity:    req.Severity,
		Tags:        req.Tags,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Finding updated successfully", result)
}

// ConfirmFinding handles POST /findings/:id/confirm
func (h *FindingHandler) ConfirmFinding(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixFinding, "finding")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.confirmFindingUC.Execute(c.Request.Context(), usecases.ConfirmFindingCommand{
		Principal: principal,
		SID:       sid,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Finding confirmed successfully", result)
}

// CloseFinding handles POST /findings/:id/close
func (h *FindingHandler) CloseFinding(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixFinding, "finding")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CloseFindingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for close finding", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.closeFindingUC.Execute(c.Request.Context(), usecases.CloseFindingCommand{
		Principal: principal,
		SID:       sid,
		Reason:    req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Finding closed successfully", result)
}

// DeleteFinding handles DELETE /findings/:id
func (h *FindingHandler) DeleteFinding(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixFinding, "finding")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	err = h.deleteFindingUC.Execute(c.Request.Context(), usecases.DeleteFindingCommand{
		Principal: principal,
		SID:       sid,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// RenderFindingHTML handles GET /findings/:id/html
func (h *FindingHandler) RenderFindingHTML(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixFinding, "finding")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.renderHTMLUC.Execute(c.Request.Context(), usecases.RenderFindingHTMLQuery{
		Principal: principal,
		SID:       sid,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
