package usecases

import (
	"context"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/area"
	"shieldtrack/internal/domain/client"
	"shieldtrack/internal/domain/user"
	"shieldtrack/internal/shared/logger"
)

type mockAreaRepository struct {
	SaveFunc            func(ctx context.Context, a *area.Area) error
	UpdateFunc          func(ctx context.Context, a *area.Area) error
	FindBySIDScopedFunc func(ctx context.Context, sid string, scope access.Scope) (*area.Area, error)
	ListFunc            func(ctx context.Context, filter area.Filter) ([]*area.Area, int64, error)
}

func (m *mockAreaRepository) Save(ctx context.Context, a *area.Area) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAreaRepository) Update(ctx context.Context, a *area.Area) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAreaRepository) FindByID(ctx context.Context, id uint) (*area.Area, error) {
	return nil, nil
}

func (m *mockAreaRepository) FindBySIDScoped(ctx context.Context, sid string, scope access.Scope) (*area.Area, error) {
	if m.FindBySIDScopedFunc != nil {
		return m.FindBySIDScopedFunc(ctx, sid, scope)
	}
	return nil, nil
}

func (m *mockAreaRepository) List(ctx context.Context, filter area.Filter) ([]*area.Area, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockAreaRepository) Delete(ctx context.Context, id uint) error { return nil }

type mockAssignmentRepository struct {
	SaveFunc              func(ctx context.Context, as *area.Assignment) error
	UpdateFunc            func(ctx context.Context, as *area.Assignment) error
	FindByUserAndAreaFunc func(ctx context.Context, userID, areaID uint) (*area.Assignment, error)
	ListForAreaFunc       func(ctx context.Context, areaID uint) ([]*area.Assignment, error)
}

func (m *mockAssignmentRepository) Save(ctx context.Context, as *area.Assignment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, as)
	}
	return nil
}

func (m *mockAssignmentRepository) Update(ctx context.Context, as *area.Assignment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, as)
	}
	return nil
}

func (m *mockAssignmentRepository) FindByUserAndArea(ctx context.Context, userID, areaID uint) (*area.Assignment, error) {
	if m.FindByUserAndAreaFunc != nil {
		return m.FindByUserAndAreaFunc(ctx, userID, areaID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) ActiveAreaIDsForUser(ctx context.Context, userID uint) ([]uint, error) {
	return nil, nil
}

func (m *mockAssignmentRepository) ListForArea(ctx context.Context, areaID uint) ([]*area.Assignment, error) {
	if m.ListForAreaFunc != nil {
		return m.ListForAreaFunc(ctx, areaID)
	}
	return nil, nil
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

type mockUserRepository struct {
	FindBySIDFunc func(ctx context.Context, sid string) (*user.User, error)
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
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.Filter) ([]*user.User, int64, error) {
	return nil, 0, nil
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
