package usecases

import (
	"context"

	"shieldtrack/internal/application/auth/dto"
	"shieldtrack/internal/domain/access"
	infraauth "shieldtrack/internal/infrastructure/auth"
)

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginResultDTO, error)
}

type RefreshTokenExecutor interface {
	Execute(ctx context.Context, cmd RefreshTokenCommand) (*dto.RefreshResultDTO, error)
}

// TokenService abstracts JWT issuance and verification for the usecases.
type TokenService interface {
	Generate(userSID string, role access.Role) (*infraauth.TokenPair, error)
	Verify(tokenString string) (*infraauth.Claims, error)
}

// PasswordHasher abstracts bcrypt for the login flow.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
