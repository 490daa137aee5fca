package setting

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shieldtrack/internal/application/setting/usecases"
	"shieldtrack/internal/interfaces/http/middleware"
	"shieldtrack/internal/shared/logger"
	"shieldtrack/internal/shared/utils"
)

type SettingHandler struct {
	getSMTPSettingsUC    usecases.GetSMTPSettingsExecutor
	updateSMTPSettingsUC usecases.UpdateSMTPSettingsExecutor
	sendTestEmailUC      usecases.SendTestEmailExecutor
	logger               logger.Interface
}

func NewSettingHandler(
	getSMTPSettingsUC usecases.GetSMTPSettingsExecutor,
	updateSMTPSettingsUC usecases.UpdateSMTPSettingsExecutor,
	sendTestEmailUC usecases.SendTestEmailExecutor,
) *SettingHandler {
	return &SettingHandler{
		getSMTPSettingsUC:    getSMTPSettingsUC,
		updateSMTPSettingsUC: updateSMTPSettingsUC,
		sendTestEmailUC:      sendTestEmailUC,
		logger:               logger.NewLogger(),
	}
}

type UpdateSMTPSettingsRequest struct {
	Host      string `json:"host" binding:"required"`
	Port      int    `json:"port" binding:"required,min=1,max=65535"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FromName  string `json:"from_name" binding:"required"`
	FromEmail string `json:"from_email" binding:"required,email"`
	UseTLS    bool   `json:"use_tls"`
	Enabled   bool   `json:"enabled"`
}

type SendTestEmailRequest struct {
	To string `json:"to" binding:"required,email"`
}

// GetSMTPSettings handles GET /settings/smtp
func (h *SettingHandler) GetSMTPSettings(c *gin.Context) {
	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.getSMTPSettingsUC.Execute(c.Request.Context(), usecases.GetSMTPSettingsQuery{
		Principal: principal,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateSMTPSettings handles PUT /settings/smtp
func (h *SettingHandler) UpdateSMTPSettings(c *gin.Context) {
	var req UpdateSMTPSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update smtp settings", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.updateSMTPSettingsUC.Execute(c.Request.Context(), usecases.UpdateSMTPSettingsCommand{
		Principal: principal,
		Host:      req.Host,
		Port:      req.Port,
		Username:  req.Username,
		Password:  req.Password,
		FromName:  req.FromName,
		FromEmail: req.FromEmail,
		UseTLS:    req.UseTLS,
		Enabled:   req.Enabled,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "SMTP settings updated successfully", result)
}

// SendTestEmail handles POST /settings/smtp/test
func (h *SettingHandler) SendTestEmail(c *gin.Context) {
	var req SendTestEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for send test email", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	err := h.sendTestEmailUC.Execute(c.Request.Context(), usecases.SendTestEmailCommand{
		Principal: principal,
		To:        req.To,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Test email sent successfully", nil)
}
