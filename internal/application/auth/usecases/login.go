package usecases

import (
	"context"
	"strings"

	"shieldtrack/internal/application/auth/dto"
	"shieldtrack/internal/domain/user"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenService
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute authenticates by email and password. All failure paths return the
// same unauthorized error so login probing learns nothing.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginResultDTO, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		uc.logger.Infow("login failed: unknown email", "email", email)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}
	if !u.IsActive() {
		uc.logger.Infow("login failed: disabled account", "user_sid", u.SID())
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Infow("login failed: bad password", "user_sid", u.SID())
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	pair, err := uc.tokens.Generate(u.SID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_sid", u.SID(), "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	uc.logger.Infow("user logged in", "user_sid", u.SID())
	return &dto.LoginResultDTO{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		UserSID:      u.SID(),
		Name:         u.Name(),
		Role:         u.Role().String(),
	}, nil
}
