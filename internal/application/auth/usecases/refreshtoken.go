package usecases

import (
	"context"

	"shieldtrack/internal/application/auth/dto"
	"shieldtrack/internal/domain/user"
	infraauth "shieldtrack/internal/infrastructure/auth"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenUseCase struct {
	userRepo user.Repository
	tokens   TokenService
	logger   logger.Interface
}

func NewRefreshTokenUseCase(
	userRepo user.Repository,
	tokens TokenService,
	logger logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute rotates the token pair. The user row is re-read so a role change
// or deactivation takes effect at the next refresh, not at token expiry.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*dto.RefreshResultDTO, error) {
	if cmd.RefreshToken == "" {
		return nil, errors.NewValidationError("refresh token is required")
	}

	claims, err := uc.tokens.Verify(cmd.RefreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}
	if claims.TokenType != infraauth.TokenTypeRefresh {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	u, err := uc.userRepo.FindBySID(ctx, claims.UserSID)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}
	if !u.IsActive() {
		return nil, errors.NewUnauthorizedError("account is disabled")
	}

	pair, err := uc.tokens.Generate(u.SID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to rotate tokens", "user_sid", u.SID(), "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	return &dto.RefreshResultDTO{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
