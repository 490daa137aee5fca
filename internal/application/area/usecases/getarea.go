package usecases

import (
	"context"
	"fmt"

	"shieldtrack/internal/application/area/dto"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/area"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
)

type GetAreaQuery struct {
	Principal access.Principal
	SID       string
}

type GetAreaUseCase struct {
	areaRepo area.Repository
	logger   logger.Interface
}

func NewGetAreaUseCase(areaRepo area.Repository, logger logger.Interface) *GetAreaUseCase {
	return &GetAreaUseCase{areaRepo: areaRepo, logger: logger}
}

func (uc *GetAreaUseCase) Execute(ctx context.Context, query GetAreaQuery) (*dto.AreaDTO, error) {
	if query.SID == "" {
		return nil, errors.NewValidationError("area ID is required")
	}

	scope, err := access.ResolveScope(query.Principal)
	if err != nil {
		uc.logger.Errorw("scope resolution failed", "user_id", query.Principal.UserID(), "error", err)
		return nil, err
	}

	a, err := uc.areaRepo.FindBySIDScoped(ctx, query.SID, scope)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewNotFoundError(fmt.Sprintf("area %s not found", query.SID))
	}

	return dto.ToAreaDTO(a), nil
}
