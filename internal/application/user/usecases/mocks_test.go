package usecases

import (
	"context"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/client"
	"shieldtrack/internal/domain/user"
	"shieldtrack/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc      func(ctx context.Context, u *user.User) error
	UpdateFunc    func(ctx context.Context, u *user.User) error
	FindBySIDFunc func(ctx context.Context, sid string) (*user.User, error)
	ListFunc      func(ctx context.Context, filter user.Filter) ([]*user.User, int64, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error { return nil }

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
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.Filter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockClientRepository struct {
	FindBySIDScopedFunc func(ctx context.Context, sid string, scope access.Scope) (*client.Client, error)
}

func (m *mockClientRepository) Save(ctx context.Context, c *client.Client) error   { return nil }
func (m *mockClientRepository) Update(ctx context.Context, c *client.Client) error { return nil }
func (m *mockClientRepository) Delete(ctx context.Context, id uint) error          { return nil }

func (m *mockClientRepository) FindByID(ctx context.Context, id uint) (*client.Client, error) {
	return nil, nil
}

func (m *mockClientRepository) FindBySID(ctx context.Context, sid string) (*client.Client, error) {
	return nil, nil
}

func (m *mockClientRepository) FindBySIDScoped(ctx context.Context, sid string, scope access.Scope) (*client.Client, error) {
	if m.FindBySIDScopedFunc != nil {
		return m.FindBySIDScopedFunc(ctx, sid, scope)
	}
	return nil, nil
}

func (m *mockClientRepository) List(ctx context.Context, filter client.Filter) ([]*client.Client, int64, error) {
	return nil, 0, nil
}

type mockHasher struct{}

func (m *mockHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (m *mockHasher) Verify(password, hash string) error   { return nil }

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
