package usecases

import (
	"context"
	"fmt"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/client"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
)

type DeleteClientCommand struct {
	Principal access.Principal
	SID       string
}

type DeleteClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewDeleteClientUseCase(clientRepo client.Repository, logger logger.Interface) *DeleteClientUseCase {
	return &DeleteClientUseCase{clientRepo: clientRepo, logger: logger}
}

// Execute hard-deletes a client. Owner only.
func (uc *DeleteClientUseCase) Execute(ctx context.Context, cmd DeleteClientCommand) error {
	if cmd.SID == "" {
		return errors.NewValidationError("client ID is required")
	}

	scope, err := access.ResolveScope(cmd.Principal)
	if err != nil {
		uc.logger.Errorw("scope resolution failed", "user_id", cmd.Principal.UserID(), "error", err)
		return err
	}

	c, err := uc.clientRepo.FindBySIDScoped(ctx, cmd.SID, scope)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return err
		}
		return errors.NewNotFoundError(fmt.Sprintf("client %s not found", cmd.SID))
	}

	ref := access.ResourceRef{ClientID: c.ID()}
	if err := access.Authorize(cmd.Principal, ref, access.OperationDelete); err != nil {
		return err
	}

	if err := uc.clientRepo.Delete(ctx, c.ID()); err != nil {
		uc.logger.Errorw("failed to delete client", "client_sid", cmd.SID, "error", err)
		return errors.NewInternalError("failed to delete client")
	}

	uc.logger.Infow("client deleted", "client_sid", cmd.SID, "deleted_by", cmd.Principal.UserID())
	return nil
}
