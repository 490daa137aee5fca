package usecases

import (
	"context"

	"shieldtrack/internal/application/user/dto"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/client"
	"shieldtrack/internal/domain/user"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/id"
	"shieldtrack/internal/shared/logger"
)

type CreateUserCommand struct {
	Principal access.Principal
	Email     string
	Password  string
	Name      string
	Role      string
	ClientSID string
}

type CreateUserUseCase struct {
	userRepo   user.Repository
	clientRepo client.Repository
	hasher     PasswordHasher
	logger     logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	clientRepo client.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:   userRepo,
		clientRepo: clientRepo,
		hasher:     hasher,
		logger:     logger,
	}
}

// Execute provisions an account. Global operators may create any user; a
// client admin may only create non-global users inside their own client.
func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	if cmd.Email == "" || cmd.Password == "" || cmd.Name == "" {
		return nil, errors.NewValidationError("email, password and name are required")
	}
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	role := access.Role(cmd.Role)
	if !role.IsValid() {
		return nil, errors.NewValidationError("unknown role")
	}

	caller := cmd.Principal.Role()
	switch {
	case caller.IsGlobal():
		// may create anyone
	case caller == access.RoleClientAdmin:
		if role.IsGlobal() {
			return nil, errors.NewForbiddenError("client admins cannot create platform operators")
		}
	default:
		return nil, errors.NewForbiddenError("role does not permit managing users")
	}

	var clientID *uint
	if !role.IsGlobal() {
		if cmd.ClientSID == "" {
			return nil, errors.NewValidationError("client is required for this role")
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
			return nil, errors.NewNotFoundError("client not found")
		}
		cid := c.ID()
		clientID = &cid
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	u, err := user.NewUser(id.NewUserSID(), cmd.Email, hash, cmd.Name, role, clientID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a user with this email already exists")
		}
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	uc.logger.Infow("user created", "user_sid", u.SID(), "role", role, "by", cmd.Principal.UserID())
	return dto.ToUserDTO(u), nil
}
