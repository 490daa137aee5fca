package usecases

import (
	"context"
	"fmt"

	"shieldtrack/internal/application/client/dto"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/client"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
	"shieldtrack/internal/shared/utils"
)

type UpdateClientCommand struct {
	Principal access.Principal
	SID       string
	Name      string
}

type UpdateClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewUpdateClientUseCase(clientRepo client.Repository, logger logger.Interface) *UpdateClientUseCase {
	return &UpdateClientUseCase{clientRepo: clientRepo, logger: logger}
}

func (uc *UpdateClientUseCase) Execute(ctx context.Context, cmd UpdateClientCommand) (*dto.ClientDTO, error) {
	if cmd.SID == "" {
		return nil, errors.NewValidationError("client ID is required")
	}
	if cmd.Name == "" {
		return nil, errors.NewValidationError("client name is required")
	}

	scope, err := access.ResolveScope(cmd.Principal)
	if err != nil {
		uc.logger.Errorw("scope resolution failed", "user_id", cmd.Principal.UserID(), "error", err)
		return nil, err
	}

	c, err := uc.clientRepo.FindBySIDScoped(ctx, cmd.SID, scope)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewNotFoundError(fmt.Sprintf("client %s not found", cmd.SID))
	}

	ref := access.ResourceRef{ClientID: c.ID()}
	if err := access.Authorize(cmd.Principal, ref, access.OperationWrite); err != nil {
		return nil, err
	}

	if err := c.Rename(utils.NormalizeDisplayName(cmd.Name)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.clientRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update client", "client_sid", cmd.SID, "error", err)
		return nil, errors.NewInternalError("failed to update client")
	}

	return dto.ToClientDTO(c), nil
}
