package access

import (
	"context"
	"fmt"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/area"
	"shieldtrack/internal/domain/user"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
)

// PrincipalResolver builds the request principal from persisted state. It is
// called once per authenticated request, after the token is verified.
type PrincipalResolver interface {
	Resolve(ctx context.Context, userID uint) (access.Principal, error)
	// ResolveBySID is the HTTP middleware entry point; tokens carry the
	// user's public identifier, not the numeric primary key.
	ResolveBySID(ctx context.Context, userSID string) (access.Principal, error)
}

type PrincipalService struct {
	userRepo       user.Repository
	assignmentRepo area.AssignmentRepository
	logger         logger.Interface
}

func NewPrincipalService(
	userRepo user.Repository,
	assignmentRepo area.AssignmentRepository,
	logger logger.Interface,
) *PrincipalService {
	return &PrincipalService{
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

// Resolve loads the user's role, client binding and active area assignments.
// Area ids are only loaded for area-bound roles; global and client-wide
// roles do not depend on assignments.
func (s *PrincipalService) Resolve(ctx context.Context, userID uint) (access.Principal, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.logger.Errorw("failed to load user for principal", "user_id", userID, "error", err)
		return access.Principal{}, errors.NewUnauthorizedError("user not found")
	}
	return s.buildPrincipal(ctx, u)
}

// ResolveBySID resolves a principal from the public user identifier carried
// in access tokens.
func (s *PrincipalService) ResolveBySID(ctx context.Context, userSID string) (access.Principal, error) {
	u, err := s.userRepo.FindBySID(ctx, userSID)
	if err != nil {
		s.logger.Errorw("failed to load user for principal", "user_sid", userSID, "error", err)
		return access.Principal{}, errors.NewUnauthorizedError("user not found")
	}
	return s.buildPrincipal(ctx, u)
}

func (s *PrincipalService) buildPrincipal(ctx context.Context, u *user.User) (access.Principal, error) {
	userID := u.ID()
	if !u.IsActive() {
		return access.Principal{}, errors.NewUnauthorizedError("user account is disabled")
	}

	role := u.Role()
	var clientID *uint
	if !role.IsGlobal() {
		clientID = u.ClientID()
		if clientID == nil {
			s.logger.Errorw("user with bound role has no client", "user_id", userID, "role", role)
			return access.Principal{}, errors.NewScopeResolutionError(
				fmt.Sprintf("user %d has role %s without a client binding", userID, role))
		}
	}

	var areaIDs []uint
	if role.IsAreaBound() {
		ids, err := s.assignmentRepo.ActiveAreaIDsForUser(ctx, userID)
		if err != nil {
			s.logger.Errorw("failed to load area assignments", "user_id", userID, "error", err)
			return access.Principal{}, errors.NewScopeResolutionError("failed to load area assignments")
		}
		areaIDs = ids
	}

	return access.NewPrincipal(userID, role, clientID, areaIDs), nil
}
