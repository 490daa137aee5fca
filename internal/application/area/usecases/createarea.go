package usecases

import (
	"context"
	"fmt"

	"shieldtrack/internal/application/area/dto"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/area"
	"shieldtrack/internal/domain/client"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/id"
	"shieldtrack/internal/shared/logger"
	"shieldtrack/internal/shared/utils"
)

type CreateAreaCommand struct {
	Principal access.Principal
	ClientSID string
	Name      string
}

type CreateAreaUseCase struct {
	areaRepo   area.Repository
	clientRepo client.Repository
	logger     logger.Interface
}

func NewCreateAreaUseCase(
	areaRepo area.Repository,
	clientRepo client.Repository,
	logger logger.Interface,
) *CreateAreaUseCase {
	return &CreateAreaUseCase{
		areaRepo:   areaRepo,
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *CreateAreaUseCase) Execute(ctx context.Context, cmd CreateAreaCommand) (*dto.AreaDTO, error) {
	if cmd.ClientSID == "" {
		return nil, errors.NewValidationError("client is required")
	}
	if cmd.Name == "" {
		return nil, errors.NewValidationError("area name is required")
	}

	scope, err := access.ResolveScope(cmd.Principal)
	if err != nil {
		uc.logger.Errorw("scope resolution failed", "user_id", cmd.Principal.UserID(), "error", err)
		return nil, err
	}

	c, err := uc.clientRepo.FindBySIDScoped(ctx, cmd.ClientSID, scope)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewNotFoundError(fmt.Sprintf("client %s not found", cmd.ClientSID))
	}

	// Creating an area is a client-level write; area-bound roles cannot
	// grow the area set they are confined to.
	ref := access.ResourceRef{ClientID: c.ID()}
	if err := access.Authorize(cmd.Principal, ref, access.OperationWrite); err != nil {
		return nil, err
	}
	if cmd.Principal.Role().IsAreaBound() {
		return nil, errors.NewForbiddenError("area-bound roles cannot create areas")
	}

	a, err := area.NewArea(id.NewAreaSID(), c.ID(), utils.NormalizeDisplayName(cmd.Name))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.areaRepo.Save(ctx, a); err != nil {
		uc.logger.Errorw("failed to save area", "error", err)
		return nil, errors.NewInternalError("failed to create area")
	}

	uc.logger.Infow("area created", "area_sid", a.SID(), "client_sid", c.SID())
	return dto.ToAreaDTO(a), nil
}
