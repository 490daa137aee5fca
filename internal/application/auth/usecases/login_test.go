package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/user"
	infraauth "shieldtrack/internal/infrastructure/auth"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
)

type mockUserRepository struct {
	FindByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	FindBySIDFunc   func(ctx context.Context, sid string) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) Delete(ctx context.Context, id uint) error      { return nil }

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) FindBySID(ctx context.Context, sid string) (*user.User, error) {
	if m.FindBySIDFunc != nil {
		return m.FindBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.Filter) ([]*user.User, int64, error) {
	return nil, 0, nil
}

type mockHasher struct {
	VerifyFunc func(password, hash string) error
}

func (m *mockHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (m *mockHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type mockTokenService struct {
	GenerateFunc func(userSID string, role access.Role) (*infraauth.TokenPair, error)
	VerifyFunc   func(tokenString string) (*infraauth.Claims, error)
}

func (m *mockTokenService) Generate(userSID string, role access.Role) (*infraauth.TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userSID, role)
	}
	return &infraauth.TokenPair{AccessToken: "at", RefreshToken: "rt", ExpiresIn: 900}, nil
}

func (m *mockTokenService) Verify(tokenString string) (*infraauth.Claims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(tokenString)
	}
	return nil, fmt.Errorf("invalid token")
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }

func activeUser(t *testing.T) *user.User {
	t.Helper()
	now := time.Now().UTC()
	clientID := uint(7)
	u, err := user.ReconstructUser(42, "us_login1", "analyst@acme.example", "stored-hash", "Ada", access.RoleAnalyst, &clientID, true, now, now)
	require.NoError(t, err)
	return u
}

func TestLoginUseCase_Execute_Success(t *testing.T) {
	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			assert.Equal(t, "analyst@acme.example", email)
			return activeUser(t), nil
		},
	}

	uc := NewLoginUseCase(repo, &mockHasher{}, &mockTokenService{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "  Analyst@Acme.example ",
		Password: "hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, "at", result.AccessToken)
	assert.Equal(t, "us_login1", result.UserSID)
	assert.Equal(t, access.RoleAnalyst.String(), result.Role)
}

func TestLoginUseCase_Execute_BadPassword(t *testing.T) {
	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return activeUser(t), nil
		},
	}
	hasher := &mockHasher{
		VerifyFunc: func(password, hash string) error {
			return fmt.Errorf("password verification failed")
		},
	}

	uc := NewLoginUseCase(repo, hasher, &mockTokenService{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), LoginCommand{Email: "analyst@acme.example", Password: "wrong"})

	require.Error(t, err)
	assert.True(t, errors.IsUnauthorizedError(err))
}

func TestLoginUseCase_Execute_UnknownEmailSameError(t *testing.T) {
	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return nil, errors.NewNotFoundError("record not found")
		},
	}

	uc := NewLoginUseCase(repo, &mockHasher{}, &mockTokenService{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), LoginCommand{Email: "ghost@acme.example", Password: "x"})

	require.Error(t, err)
	assert.True(t, errors.IsUnauthorizedError(err))
	appErr := errors.GetAppError(err)
	assert.Equal(t, "invalid credentials", appErr.Message)
}

func TestRefreshTokenUseCase_Execute_RejectsAccessToken(t *testing.T) {
	tokens := &mockTokenService{
		VerifyFunc: func(tokenString string) (*infraauth.Claims, error) {
			return &infraauth.Claims{UserSID: "us_login1", TokenType: infraauth.TokenTypeAccess}, nil
		},
	}

	uc := NewRefreshTokenUseCase(&mockUserRepository{}, tokens, &mockLogger{})

	_, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "an-access-token"})

	require.Error(t, err)
	assert.True(t, errors.IsUnauthorizedError(err))
}

func TestRefreshTokenUseCase_Execute_Success(t *testing.T) {
	tokens := &mockTokenService{
		VerifyFunc: func(tokenString string) (*infraauth.Claims, error) {
			return &infraauth.Claims{UserSID: "us_login1", TokenType: infraauth.TokenTypeRefresh}, nil
		},
	}
	repo := &mockUserRepository{
		FindBySIDFunc: func(ctx context.Context, sid string) (*user.User, error) {
			return activeUser(t), nil
		},
	}

	uc := NewRefreshTokenUseCase(repo, tokens, &mockLogger{})

	result, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "rt"})

	require.NoError(t, err)
	assert.Equal(t, "at", result.AccessToken)
	assert.Equal(t, "rt", result.RefreshToken)
}
