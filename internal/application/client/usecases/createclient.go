package usecases

import (
	"context"

	"shieldtrack/internal/application/client/dto"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/client"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/id"
	"shieldtrack/internal/shared/logger"
	"shieldtrack/internal/shared/utils"
)

type CreateClientCommand struct {
	Principal access.Principal
	Name      string
	TenantID  string
}

type CreateClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewCreateClientUseCase(clientRepo client.Repository, logger logger.Interface) *CreateClientUseCase {
	return &CreateClientUseCase{clientRepo: clientRepo, logger: logger}
}

// Execute onboards a client. Only global roles may do this; client records
// sit above every scope.
func (uc *CreateClientUseCase) Execute(ctx context.Context, cmd CreateClientCommand) (*dto.ClientDTO, error) {
	if !cmd.Principal.Role().IsGlobal() {
		return nil, errors.NewForbiddenError("only platform operators may create clients")
	}
	if cmd.Name == "" {
		return nil, errors.NewValidationError("client name is required")
	}
	if cmd.TenantID == "" {
		return nil, errors.NewValidationError("tenant ID is required")
	}

	name := utils.NormalizeDisplayName(cmd.Name)
	c, err := client.NewClient(id.NewClientSID(), name, cmd.TenantID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.clientRepo.Save(ctx, c); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a client with this tenant ID already exists")
		}
		uc.logger.Errorw("failed to save client", "error", err)
		return nil, errors.NewInternalError("failed to create client")
	}

	uc.logger.Infow("client created", "client_sid", c.SID(), "tenant_id", cmd.TenantID)
	return dto.ToClientDTO(c), nil
}
