package usecases

import (
	"context"

	"shieldtrack/internal/application/setting/dto"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/setting"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
)

type GetSMTPSettingsQuery struct {
	Principal access.Principal
}

type GetSMTPSettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewGetSMTPSettingsUseCase(settingRepo setting.Repository, logger logger.Interface) *GetSMTPSettingsUseCase {
	return &GetSMTPSettingsUseCase{settingRepo: settingRepo, logger: logger}
}

// Execute returns the mail settings. Platform-level configuration, so only
// global roles see it.
func (uc *GetSMTPSettingsUseCase) Execute(ctx context.Context, query GetSMTPSettingsQuery) (*dto.SMTPSettingsDTO, error) {
	if !query.Principal.Role().IsGlobal() {
		return nil, errors.NewForbiddenError("only platform operators may view mail settings")
	}

	s, err := uc.settingRepo.Get(ctx)
	if err != nil {
		return nil, errors.NewNotFoundError("mail settings are not configured")
	}

	return dto.ToSMTPSettingsDTO(s), nil
}
