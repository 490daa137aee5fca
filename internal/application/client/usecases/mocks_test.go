package usecases

import (
	"context"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/client"
	"shieldtrack/internal/shared/logger"
)

type mockClientRepository struct {
	SaveFunc            func(ctx context.Context, c *client.Client) error
	UpdateFunc          func(ctx context.Context, c *client.Client) error
	FindByIDFunc        func(ctx context.Context, id uint) (*client.Client, error)
	FindBySIDFunc       func(ctx context.Context, sid string) (*client.Client, error)
	FindBySIDScopedFunc func(ctx context.Context, sid string, scope access.Scope) (*client.Client, error)
	ListFunc            func(ctx context.Context, filter client.Filter) ([]*client.Client, int64, error)
	DeleteFunc          func(ctx context.Context, id uint) error
}

func (m *mockClientRepository) Save(ctx context.Context, c *client.Client) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockClientRepository) Update(ctx context.Context, c *client.Client) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockClientRepository) FindByID(ctx context.Context, id uint) (*client.Client, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockClientRepository) FindBySID(ctx context.Context, sid string) (*client.Client, error) {
	if m.FindBySIDFunc != nil {
		return m.FindBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockClientRepository) FindBySIDScoped(ctx context.Context, sid string, scope access.Scope) (*client.Client, error) {
	if m.FindBySIDScopedFunc != nil {
		return m.FindBySIDScopedFunc(ctx, sid, scope)
	}
	return nil, nil
}

func (m *mockClientRepository) List(ctx context.Context, filter client.Filter) ([]*client.Client, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockClientRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
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
