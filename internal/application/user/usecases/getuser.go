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

type GetUserQuery struct {
	Principal access.Principal
	SID       string
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*dto.UserDTO, error) {
	if query.SID == "" {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.FindBySID(ctx, query.SID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %s not found", query.SID))
	}

	if !canAdministerUser(query.Principal, u) && query.Principal.UserID() != u.ID() {
		// Hide the account's existence from callers outside its client.
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %s not found", query.SID))
	}

	return dto.ToUserDTO(u), nil
}

// canAdministerUser reports whether the caller may see or manage the target
// account. Global operators manage everyone; client admins manage non-global
// accounts of their own client.
func canAdministerUser(p access.Principal, target *user.User) bool {
	if p.Role().IsGlobal() {
		return true
	}
	if p.Role() != access.RoleClientAdmin {
		return false
	}
	if target.Role().IsGlobal() {
		return false
	}
	callerClient, ok := p.ClientID()
	if !ok {
		return false
	}
	targetClient := target.ClientID()
	return targetClient != nil && *targetClient == callerClient
}
