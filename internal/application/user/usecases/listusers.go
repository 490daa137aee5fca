package usecases

import (
	"context"

	"shieldtrack/internal/application/user/dto"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/user"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
	"shieldtrack/internal/shared/query"
)

type ListUsersQuery struct {
	Principal  access.Principal
	Page       int
	PageSize   int
	Role       *string
	ActiveOnly bool
}

type ListUsersResult struct {
	Users    []*dto.UserDTO
	Total    int64
	Page     int
	PageSize int
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

// Execute lists accounts. Client admins are pinned to their own client;
// other non-global roles get nothing.
func (uc *ListUsersUseCase) Execute(ctx context.Context, q ListUsersQuery) (*ListUsersResult, error) {
	filter := user.Filter{
		BaseFilter: query.NewBaseFilter(query.WithPage(q.Page, q.PageSize)),
		Role:       q.Role,
		ActiveOnly: q.ActiveOnly,
	}

	caller := q.Principal.Role()
	switch {
	case caller.IsGlobal():
		// unrestricted
	case caller == access.RoleClientAdmin:
		clientID, ok := q.Principal.ClientID()
		if !ok {
			return nil, errors.NewScopeResolutionError("client admin without a client binding")
		}
		filter.ClientID = &clientID
	default:
		return nil, errors.NewForbiddenError("role does not permit listing users")
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}

	return &ListUsersResult{
		Users:    dto.ToUserDTOs(users),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
