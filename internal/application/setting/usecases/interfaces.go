package usecases

import (
	"context"

	"shieldtrack/internal/application/setting/dto"
)

type GetSMTPSettingsExecutor interface {
	Execute(ctx context.Context, query GetSMTPSettingsQuery) (*dto.SMTPSettingsDTO, error)
}

type UpdateSMTPSettingsExecutor interface {
	Execute(ctx context.Context, cmd UpdateSMTPSettingsCommand) (*dto.SMTPSettingsDTO, error)
}

type SendTestEmailExecutor interface {
	Execute(ctx context.Context, cmd SendTestEmailCommand) error
}
