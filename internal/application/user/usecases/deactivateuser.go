package usecases

import (
	"context"
	"fmt"

	"shieldtrack/internal/application/user/dto"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/user"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
)

type DeactivateUserCommand struct {
	Principal access.Principal
	SID       string
}

type DeactivateUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeactivateUserUseCase(userRepo user.Repository, logger logger.Interface) *DeactivateUserUseCase {
	return &DeactivateUserUseCase{userRepo: userRepo, logger: logger}
}

// Execute disables an account. Its next principal resolution fails with 401,
// which logs the user out everywhere at once.
func (uc *DeactivateUserUseCase) Execute(ctx context.Context, cmd DeactivateUserCommand) (*dto.UserDTO, error) {
	if cmd.SID == "" {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.FindBySID(ctx, cmd.SID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %s not found", cmd.SID))
	}

	if !canAdministerUser(cmd.Principal, u) {
		return nil, errors.NewForbiddenError("role does not permit managing this user")
	}
	if u.ID() == cmd.Principal.UserID() {
		return nil, errors.NewValidationError("cannot deactivate your own account")
	}
	if u.Role() == access.RoleOwner {
		return nil, errors.NewForbiddenError("owner accounts cannot be deactivated")
	}

	u.Deactivate()

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to deactivate user", "user_sid", cmd.SID, "error", err)
		return nil, errors.NewInternalError("failed to deactivate user")
	}

	uc.logger.Infow("user deactivated", "user_sid", cmd.SID, "by", cmd.Principal.UserID())
	return dto.ToUserDTO(u), nil
}
