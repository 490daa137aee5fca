package usecases

import (
	"context"
	"fmt"

	"shieldtrack/internal/application/finding/dto"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/finding"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
)

type GetFindingQuery struct {
	Principal access.Principal
	SID       string
}

type GetFindingUseCase struct {
	findingRepo finding.Repository
	logger      logger.Interface
}

func NewGetFindingUseCase(findingRepo finding.Repository, logger logger.Interface) *GetFindingUseCase {
	return &GetFindingUseCase{findingRepo: findingRepo, logger: logger}
}

func (uc *GetFindingUseCase) Execute(ctx context.Context, query GetFindingQuery) (*dto.FindingDTO, error) {
	if query.SID == "" {
		return nil, errors.NewValidationError("finding ID is required")
	}

	scope, err := access.ResolveScope(query.Principal)
	if err != nil {
		uc.logger.Errorw("scope resolution failed", "user_id", query.Principal.UserID(), "error", err)
		return nil, err
	}

	f, err := uc.findingRepo.FindBySIDScoped(ctx, query.SID, scope)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewNotFoundError(fmt.Sprintf("finding %s not found", query.SID))
	}

	return dto.ToFindingDTO(f), nil
}
