package usecases

import (
	"context"
	"strings"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/setting"
	"shieldtrack/internal/infrastructure/email"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
)

type SendTestEmailCommand struct {
	Principal access.Principal
	To        string
}

type SendTestEmailUseCase struct {
	settingRepo setting.Repository
	sender      email.Sender
	logger      logger.Interface
}

func NewSendTestEmailUseCase(
	settingRepo setting.Repository,
	sender email.Sender,
	logger logger.Interface,
) *SendTestEmailUseCase {
	return &SendTestEmailUseCase{
		settingRepo: settingRepo,
		sender:      sender,
		logger:      logger,
	}
}

func (uc *SendTestEmailUseCase) Execute(ctx context.Context, cmd SendTestEmailCommand) error {
	if !cmd.Principal.Role().IsGlobal() {
		return errors.NewForbiddenError("only platform operators may send test emails")
	}
	if cmd.To == "" || !strings.Contains(cmd.To, "@") {
		return errors.NewValidationError("a valid recipient address is required")
	}

	s, err := uc.settingRepo.Get(ctx)
	if err != nil {
		return errors.NewNotFoundError("mail settings are not configured")
	}

	body := "<p>This is a test message confirming the SMTP configuration works.</p>"
	if err := uc.sender.Send(s, cmd.To, "SMTP configuration test", body); err != nil {
		uc.logger.Errorw("test email failed", "to", cmd.To, "error", err)
		return errors.NewInternalError("failed to send test email")
	}

	uc.logger.Infow("test email sent", "to", cmd.To, "by", cmd.Principal.UserID())
	return nil
}
