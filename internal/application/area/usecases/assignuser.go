package usecases

import (
	"context"
	"fmt"

	"shieldtrack/internal/application/area/dto"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/area"
	"shieldtrack/internal/domain/user"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
)

type AssignUserCommand struct {
	Principal access.Principal
	AreaSID   string
	UserSID   string
}

type AssignUserUseCase struct {
	areaRepo       area.Repository
	assignmentRepo area.AssignmentRepository
	userRepo       user.Repository
	logger         logger.Interface
}

func NewAssignUserUseCase(
	areaRepo area.Repository,
	assignmentRepo area.AssignmentRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *AssignUserUseCase {
	return &AssignUserUseCase{
		areaRepo:       areaRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// Execute grants a user access to an area. The user must belong to the same
// client as the area; an assignment must never bridge tenants.
func (uc *AssignUserUseCase) Execute(ctx context.Context, cmd AssignUserCommand) (*dto.AssignmentDTO, error) {
	if cmd.AreaSID == "" || cmd.UserSID == "" {
		return nil, errors.NewValidationError("area and user are required")
	}

	scope, err := access.ResolveScope(cmd.Principal)
	if err != nil {
		uc.logger.Errorw("scope resolution failed", "user_id", cmd.Principal.UserID(), "error", err)
		return nil, err
	}

	a, err := uc.areaRepo.FindBySIDScoped(ctx, cmd.AreaSID, scope)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewNotFoundError(fmt.Sprintf("area %s not found", cmd.AreaSID))
	}

	areaID := a.ID()
	ref := access.ResourceRef{ClientID: a.ClientID(), AreaID: &areaID}
	if err := access.Authorize(cmd.Principal, ref, access.OperationWrite); err != nil {
		return nil, err
	}
	if cmd.Principal.Role() == access.RoleAnalyst || cmd.Principal.Role() == access.RoleViewer {
		return nil, errors.NewForbiddenError("role does not permit managing assignments")
	}

	u, err := uc.userRepo.FindBySID(ctx, cmd.UserSID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %s not found", cmd.UserSID))
	}
	if u.Role().IsGlobal() {
		return nil, errors.NewValidationError("global roles do not use area assignments")
	}
	if cid := u.ClientID(); cid == nil || *cid != a.ClientID() {
		return nil, errors.NewValidationError("user belongs to a different client than the area")
	}

	if existing, err := uc.assignmentRepo.FindByUserAndArea(ctx, u.ID(), a.ID()); err == nil && existing != nil {
		existing.Restore()
		if err := uc.assignmentRepo.Update(ctx, existing); err != nil {
			uc.logger.Errorw("failed to restore assignment", "error", err)
			return nil, errors.NewInternalError("failed to assign user")
		}
		return dto.ToAssignmentDTO(existing), nil
	}

	as, err := area.NewAssignment(u.ID(), a.ID())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.assignmentRepo.Save(ctx, as); err != nil {
		uc.logger.Errorw("failed to save assignment", "error", err)
		return nil, errors.NewInternalError("failed to assign user")
	}

	uc.logger.Infow("user assigned to area", "user_sid", cmd.UserSID, "area_sid", cmd.AreaSID)
	return dto.ToAssignmentDTO(as), nil
}
