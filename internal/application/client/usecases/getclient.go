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

type GetClientQuery struct {
	Principal access.Principal
	SID       string
}

type GetClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewGetClientUseCase(clientRepo client.Repository, logger logger.Interface) *GetClientUseCase {
	return &GetClientUseCase{clientRepo: clientRepo, logger: logger}
}

func (uc *GetClientUseCase) Execute(ctx context.Context, query GetClientQuery) (*dto.ClientDTO, error) {
	if query.SID == "" {
		return nil, errors.NewValidationError("client ID is required")
	}

	scope, err := access.ResolveScope(query.Principal)
	if err != nil {
		uc.logger.Errorw("scope resolution failed", "user_id", query.Principal.UserID(), "error", err)
		return nil, err
	}

	c, err := uc.clientRepo.FindBySIDScoped(ctx, query.SID, scope)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewNotFoundError(fmt.Sprintf("client %s not found", query.SID))
	}

	return dto.ToClientDTO(c), nil
}
