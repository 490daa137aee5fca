package usecases

import (
	"context"
	"fmt"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/area"
	"shieldtrack/internal/domain/user"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
)

type RevokeAssignmentCommand struct {
	Principal access.Principal
	AreaSID   string
	UserSID   string
}

type RevokeAssignmentUseCase struct {
	areaRepo       area.Repository
	assignmentRepo area.AssignmentRepository
	userRepo       user.Repository
	logger         logger.Interface
}

func NewRevokeAssignmentUseCase(
	areaRepo area.Repository,
	assignmentRepo area.AssignmentRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *RevokeAssignmentUseCase {
	return &RevokeAssignmentUseCase{
		areaRepo:       areaRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// Execute soft-revokes an assignment. The user's next request resolves a
// scope without this area.
func (uc *RevokeAssignmentUseCase) Execute(ctx context.Context, cmd RevokeAssignmentCommand) error {
	if cmd.AreaSID == "" || cmd.UserSID == "" {
		return errors.NewValidationError("area and user are required")
	}

	scope, err := access.ResolveScope(cmd.Principal)
	if err != nil {
		uc.logger.Errorw("scope resolution failed", "user_id", cmd.Principal.UserID(), "error", err)
		return err
	}

	a, err := uc.areaRepo.FindBySIDScoped(ctx, cmd.AreaSID, scope)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return err
		}
		return errors.NewNotFoundError(fmt.Sprintf("area %s not found", cmd.AreaSID))
	}

	areaID := a.ID()
	ref := access.ResourceRef{ClientID: a.ClientID(), AreaID: &areaID}
	if err := access.Authorize(cmd.Principal, ref, access.OperationWrite); err != nil {
		return err
	}
	if cmd.Principal.Role() == access.RoleAnalyst || cmd.Principal.Role() == access.RoleViewer {
		return errors.NewForbiddenError("role does not permit managing assignments")
	}

	u, err := uc.userRepo.FindBySID(ctx, cmd.UserSID)
	if err != nil {
		return errors.NewNotFoundError(fmt.Sprintf("user %s not found", cmd.UserSID))
	}

	as, err := uc.assignmentRepo.FindByUserAndArea(ctx, u.ID(), a.ID())
	if err != nil || as == nil {
		return errors.NewNotFoundError("assignment not found")
	}

	as.Revoke()
	if err := uc.assignmentRepo.Update(ctx, as); err != nil {
		uc.logger.Errorw("failed to revoke assignment", "error", err)
		return errors.NewInternalError("failed to revoke assignment")
	}

	uc.logger.Infow("assignment revoked", "user_sid", cmd.UserSID, "area_sid", cmd.AreaSID)
	return nil
}
