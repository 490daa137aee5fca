package access

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/area"
	"shieldtrack/internal/domain/user"
	"shieldtrack/internal/shared/biztime"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
)

type mockUserRepository struct {
	FindByIDFunc    func(ctx context.Context, id uint) (*user.User, error)
	FindBySIDFunc   func(ctx context.Context, sid string) (*user.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) Delete(ctx context.Context, id uint) error      { return nil }

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
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

type mockAssignmentRepository struct {
	ActiveAreaIDsForUserFunc func(ctx context.Context, userID uint) ([]uint, error)
}

func (m *mockAssignmentRepository) Save(ctx context.Context, as *area.Assignment) error   { return nil }
func (m *mockAssignmentRepository) Update(ctx context.Context, as *area.Assignment) error { return nil }

func (m *mockAssignmentRepository) FindByUserAndArea(ctx context.Context, userID, areaID uint) (*area.Assignment, error) {
	return nil, nil
}

func (m *mockAssignmentRepository) ActiveAreaIDsForUser(ctx context.Context, userID uint) ([]uint, error) {
	if m.ActiveAreaIDsForUserFunc != nil {
		return m.ActiveAreaIDsForUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) ListForArea(ctx context.Context, areaID uint) ([]*area.Assignment, error) {
	return nil, nil
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

func reconstructTestUser(t *testing.T, id uint, role access.Role, clientID *uint, active bool) *user.User {
	t.Helper()
	now := biztime.NowUTC()
	u, err := user.ReconstructUser(id, fmt.Sprintf("us_%d", id), "analyst@example.com", "hash", "Analyst", role, clientID, active, now, now)
	require.NoError(t, err)
	return u
}

func TestPrincipalService_Resolve(t *testing.T) {
	clientID := uint(7)

	t.Run("area-bound role loads active assignments", func(t *testing.T) {
		userRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return reconstructTestUser(t, id, access.RoleAnalyst, &clientID, true), nil
			},
		}
		assignmentRepo := &mockAssignmentRepository{
			ActiveAreaIDsForUserFunc: func(ctx context.Context, userID uint) ([]uint, error) {
				return []uint{9, 3, 9}, nil
			},
		}

		svc := NewPrincipalService(userRepo, assignmentRepo, &mockLogger{})
		p, err := svc.Resolve(context.Background(), 42)

		require.NoError(t, err)
		assert.Equal(t, access.RoleAnalyst, p.Role())
		got, ok := p.ClientID()
		require.True(t, ok)
		assert.Equal(t, clientID, got)
		assert.Equal(t, []uint{3, 9}, p.AreaIDs())
	})

	t.Run("global role skips assignment lookup", func(t *testing.T) {
		called := false
		userRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return reconstructTestUser(t, id, access.RoleOwner, nil, true), nil
			},
		}
		assignmentRepo := &mockAssignmentRepository{
			ActiveAreaIDsForUserFunc: func(ctx context.Context, userID uint) ([]uint, error) {
				called = true
				return nil, nil
			},
		}

		svc := NewPrincipalService(userRepo, assignmentRepo, &mockLogger{})
		p, err := svc.Resolve(context.Background(), 1)

		require.NoError(t, err)
		assert.False(t, called)
		_, hasClient := p.ClientID()
		assert.False(t, hasClient)
	})

	t.Run("client_admin needs no assignments", func(t *testing.T) {
		userRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return reconstructTestUser(t, id, access.RoleClientAdmin, &clientID, true), nil
			},
		}

		svc := NewPrincipalService(userRepo, &mockAssignmentRepository{}, &mockLogger{})
		p, err := svc.Resolve(context.Background(), 2)

		require.NoError(t, err)
		assert.Empty(t, p.AreaIDs())
	})

	t.Run("disabled account is rejected", func(t *testing.T) {
		userRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return reconstructTestUser(t, id, access.RoleViewer, &clientID, false), nil
			},
		}

		svc := NewPrincipalService(userRepo, &mockAssignmentRepository{}, &mockLogger{})
		_, err := svc.Resolve(context.Background(), 3)

		require.Error(t, err)
		assert.True(t, errors.IsUnauthorizedError(err))
	})

	t.Run("assignment lookup failure does not widen access", func(t *testing.T) {
		userRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return reconstructTestUser(t, id, access.RoleAreaAdmin, &clientID, true), nil
			},
		}
		assignmentRepo := &mockAssignmentRepository{
			ActiveAreaIDsForUserFunc: func(ctx context.Context, userID uint) ([]uint, error) {
				return nil, fmt.Errorf("connection reset")
			},
		}

		svc := NewPrincipalService(userRepo, assignmentRepo, &mockLogger{})
		_, err := svc.Resolve(context.Background(), 4)

		require.Error(t, err)
		assert.True(t, errors.IsScopeResolutionError(err))
	})
}
