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

type UpdateUserCommand struct {
	Principal access.Principal
	SID       string
	Name      string
	Role      *string
	Password  *string
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{userRepo: userRepo, hasher: hasher, logger: logger}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error) {
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

	if cmd.Name != "" {
		if err := u.Rename(cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Role != nil {
		newRole := access.Role(*cmd.Role)
		if !newRole.IsValid() {
			return nil, errors.NewValidationError("unknown role")
		}
		if newRole.IsGlobal() && !cmd.Principal.Role().IsGlobal() {
			return nil, errors.NewForbiddenError("client admins cannot grant platform roles")
		}
		var clientID *uint
		if !newRole.IsGlobal() {
			clientID = u.ClientID()
		}
		if err := u.ChangeRole(newRole, clientID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Password != nil {
		if len(*cmd.Password) < 8 {
			return nil, errors.NewValidationError("password must be at least 8 characters")
		}
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("failed to update user")
		}
		if err := u.UpdatePasswordHash(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_sid", cmd.SID, "error", err)
		return nil, errors.NewInternalError("failed to update user")
	}

	uc.logger.Infow("user updated", "user_sid", cmd.SID, "by", cmd.Principal.UserID())
	return dto.ToUserDTO(u), nil
}
