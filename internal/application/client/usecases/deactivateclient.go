package usecases

import (
	"context"
	"fmt"

	"shieldtrack/internal/application/client/dto"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/client"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
)

type DeactivateClientCommand struct {
	Principal access.Principal
	SID       string
}

type DeactivateClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewDeactivateClientUseCase(clientRepo client.Repository, logger logger.Interface) *DeactivateClientUseCase {
	return &DeactivateClientUseCase{clientRepo: clientRepo, logger: logger}
}

// Execute soft-disables a client. The record and its history stay; scoped
// list queries with ActiveOnly stop returning it.
func (uc *DeactivateClientUseCase) Execute(ctx context.Context, cmd DeactivateClientCommand) (*dto.ClientDTO, error) {
	if cmd.SID == "" {
		return nil, errors.NewValidationError("client ID is required")
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

	c.Deactivate()

	if err := uc.clientRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to deactivate client", "client_sid", cmd.SID, "error", err)
		return nil, errors.NewInternalError("failed to deactivate client")
	}

	uc.logger.Infow("client deactivated", "client_sid", cmd.SID, "by", cmd.Principal.UserID())
	return dto.ToClientDTO(c), nil
}
