package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shieldtrack/internal/application/user/usecases"
	"shieldtrack/internal/interfaces/http/middleware"
	"shieldtrack/internal/shared/id"
	"shieldtrack/internal/shared/logger"
	"shieldtrack/internal/shared/utils"
)

type UserHandler struct {
	createUserUC     usecases.CreateUserExecutor
	getUserUC        usecases.GetUserExecutor
	listUsersUC      usecases.ListUsersExecutor
	updateUserUC     usecases.UpdateUserExecutor
	deactivateUserUC usecases.DeactivateUserExecutor
	logger           logger.Interface
}

func NewUserHandler(
	createUserUC usecases.CreateUserExecutor,
	getUserUC usecases.GetUserExecutor,
	listUsersUC usecases.ListUsersExecutor,
	updateUserUC usecases.UpdateUserExecutor,
	deactivateUserUC usecases.DeactivateUserExecutor,
) *UserHandler {
	return &UserHandler{
		createUserUC:     createUserUC,
		getUserUC:        getUserUC,
		listUsersUC:      listUsersUC,
		updateUserUC:     updateUserUC,
		deactivateUserUC: deactivateUserUC,
		logger:           logger.NewLogger(),
	}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.createUserUC.Execute(c.Request.Context(), req.ToCommand(principal))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixUser, "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{
		Principal: principal,
		SID:       sid,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	req := parseListUsersRequest(c)

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.listUsersUC.Execute(c.Request.Context(), req.ToQuery(principal))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, result.Page, result.PageSize)
}

// UpdateUser handles PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixUser, "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update user", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.updateUserUC.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		Principal: principal,
		SID:       sid,
		Name:      req.Name,
		Role:      req.Role,
		Password:  req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", result)
}

// DeactivateUser handles DELETE /users/:id
//
// Users are never hard deleted; the row is kept for audit history and the
// account is disabled instead.
func (h *UserHandler) DeactivateUser(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixUser, "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.deactivateUserUC.Execute(c.Request.Context(), usecases.DeactivateUserCommand{
		Principal: principal,
		SID:       sid,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User deactivated successfully", result)
}
