package usecases

import (
	"context"

	"shieldtrack/internal/application/setting/dto"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/setting"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
)

type UpdateSMTPSettingsCommand struct {
	Principal access.Principal
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
	Enabled   bool
}

type UpdateSMTPSettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewUpdateSMTPSettingsUseCase(settingRepo setting.Repository, logger logger.Interface) *UpdateSMTPSettingsUseCase {
	return &UpdateSMTPSettingsUseCase{settingRepo: settingRepo, logger: logger}
}

func (uc *UpdateSMTPSettingsUseCase) Execute(ctx context.Context, cmd UpdateSMTPSettingsCommand) (*dto.SMTPSettingsDTO, error) {
	if !cmd.Principal.Role().IsGlobal() {
		return nil, errors.NewForbiddenError("only platform operators may change mail settings")
	}

	existing, err := uc.settingRepo.Get(ctx)
	if err != nil {
		s, err := setting.NewSMTPSettings(cmd.Host, cmd.Port, cmd.Username, cmd.Password, cmd.FromName, cmd.FromEmail, cmd.UseTLS)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.settingRepo.Save(ctx, s); err != nil {
			uc.logger.Errorw("failed to save mail settings", "error", err)
			return nil, errors.NewInternalError("failed to save mail settings")
		}
		uc.logger.Infow("mail settings created", "host", cmd.Host, "by", cmd.Principal.UserID())
		return dto.ToSMTPSettingsDTO(s), nil
	}

	// An empty password keeps the stored one; the DTO never echoes it back.
	password := cmd.Password
	if password == "" {
		password = existing.Password()
	}

	if err := existing.Update(cmd.Host, cmd.Port, cmd.Username, password, cmd.FromName, cmd.FromEmail, cmd.UseTLS, cmd.Enabled); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.settingRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update mail settings", "error", err)
		return nil, errors.NewInternalError("failed to update mail settings")
	}

	uc.logger.Infow("mail settings updated", "host", cmd.Host, "by", cmd.Principal.UserID())
	return dto.ToSMTPSettingsDTO(existing), nil
}
