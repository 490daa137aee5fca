package usecases

import (
	"context"
	"fmt"

	"shieldtrack/internal/application/area/dto"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/area"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
	"shieldtrack/internal/shared/utils"
)

type UpdateAreaCommand struct {
	Principal access.Principal
	SID       string
	Name      string
	Active    *bool
}

type UpdateAreaUseCase struct {
	areaRepo area.Repository
	logger   logger.Interface
}

func NewUpdateAreaUseCase(areaRepo area.Repository, logger logger.Interface) *UpdateAreaUseCase {
	return &UpdateAreaUseCase{areaRepo: areaRepo, logger: logger}
}

func (uc *UpdateAreaUseCase) Execute(ctx context.Context, cmd UpdateAreaCommand) (*dto.AreaDTO, error) {
	if cmd.SID == "" {
		return nil, errors.NewValidationError("area ID is required")
	}

	scope, err := access.ResolveScope(cmd.Principal)
	if err != nil {
		uc.logger.Errorw("scope resolution failed", "user_id", cmd.Principal.UserID(), "error", err)
		return nil, err
	}

	a, err := uc.areaRepo.FindBySIDScoped(ctx, cmd.SID, scope)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewNotFoundError(fmt.Sprintf("area %s not found", cmd.SID))
	}

	areaID := a.ID()
	ref := access.ResourceRef{ClientID: a.ClientID(), AreaID: &areaID}
	if err := access.Authorize(cmd.Principal, ref, access.OperationWrite); err != nil {
		return nil, err
	}

	if cmd.Name != "" {
		if err := a.Rename(utils.NormalizeDisplayName(cmd.Name)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Active != nil {
		if *cmd.Active {
			a.Activate()
		} else {
			a.Deactivate()
		}
	}

	if err := uc.areaRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to update area", "area_sid", cmd.SID, "error", err)
		return nil, errors.NewInternalError("failed to update area")
	}

	return dto.ToAreaDTO(a), nil
}
