package client

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shieldtrack/internal/application/client/usecases"
	"shieldtrack/internal/interfaces/http/middleware"
	"shieldtrack/internal/shared/id"
	"shieldtrack/internal/shared/logger"
	"shieldtrack/internal/shared/utils"
)

type ClientHandler struct {
	createClientUC     usecases.CreateClientExecutor
	getClientUC        usecases.GetClientExecutor
	listClientsUC      usecases.ListClientsExecutor
	updateClientUC     usecases.UpdateClientExecutor
	deactivateClientUC usecases.DeactivateClientExecutor
	deleteClientUC     usecases.DeleteClientExecutor
	logger             logger.Interface
}

func NewClientHandler(
	createClientUC usecases.CreateClientExecutor,
	getClientUC usecases.GetClientExecutor,
	listClientsUC usecases.ListClientsExecutor,
	updateClientUC usecases.UpdateClientExecutor,
	deactivateClientUC usecases.DeactivateClientExecutor,
	deleteClientUC usecases.DeleteClientExecutor,
) *ClientHandler {
	return &ClientHandler{
		createClientUC:     createClientUC,
		getClientUC:        getClientUC,
		listClientsUC:      listClientsUC,
		updateClientUC:     updateClientUC,
		deactivateClientUC: deactivateClientUC,
		deleteClientUC:     deleteClientUC,
		logger:             logger.NewLogger(),
	}
}

// CreateClient handles POST /clients
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create client", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.createClientUC.Execute(c.Request.Context(), req.ToCommand(principal))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Client created successfully")
}

// GetClient handles GET /clients/:id
func (h *ClientHandler) GetClient(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixClient, "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.getClientUC.Execute(c.Request.Context(), usecases.GetClientQuery{
		Principal: principal,
		SID:       sid,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListClients handles GET /clients
func (h *ClientHandler) ListClients(c *gin.Context) {
	req := parseListClientsRequest(c)

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.listClientsUC.Execute(c.Request.Context(), req.ToQuery(principal))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Clients, result.Total, result.Page, result.PageSize)
}

// UpdateClient handles PUT /clients/:id
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixClient, "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update client", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.updateClientUC.Execute(c.Request.Context(), usecases.UpdateClientCommand{
		Principal: principal,
		SID:       sid,
		Name:      req.Name,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client updated successfully", result)
}

// DeactivateClient handles POST /clients/:id/deactivate
func (h *ClientHandler) DeactivateClient(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixClient, "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.deactivateClientUC.Execute(c.Request.Context(), usecases.DeactivateClientCommand{
		Principal: principal,
		SID:       sid,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client deactivated successfully", result)
}

// DeleteClient handles DELETE /clients/:id
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixClient, "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	err = h.deleteClientUC.Execute(c.Request.Context(), usecases.DeleteClientCommand{
		Principal: principal,
		SID:       sid,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
