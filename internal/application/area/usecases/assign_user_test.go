package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/area"
	"shieldtrack/internal/domain/user"
	"shieldtrack/internal/shared/errors"
)

func uintPtr(v uint) *uint { return &v }

func reconstructAssignArea(t *testing.T, id, clientID uint) *area.Area {
	t.Helper()
	now := time.Now().UTC()
	a, err := area.ReconstructArea(id, "ar_appsec1", clientID, "Application Security", true, now, now)
	require.NoError(t, err)
	return a
}

func reconstructAssignUser(t *testing.T, id uint, role access.Role, clientID *uint) *user.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := user.ReconstructUser(id, "us_target1", "target@acme.example", "hash", "Target", role, clientID, true, now, now)
	require.NoError(t, err)
	return u
}

func TestAssignUserUseCase_Execute_Success(t *testing.T) {
	var saved *area.Assignment
	areaRepo := &mockAreaRepository{
		FindBySIDScopedFunc: func(ctx context.Context, sid string, scope access.Scope) (*area.Area, error) {
			return reconstructAssignArea(t, 3, 7), nil
		},
	}
	assignmentRepo := &mockAssignmentRepository{
		FindByUserAndAreaFunc: func(ctx context.Context, userID, areaID uint) (*area.Assignment, error) {
			return nil, errors.NewNotFoundError("record not found")
		},
		SaveFunc: func(ctx context.Context, as *area.Assignment) error {
			saved = as
			return nil
		},
	}
	userRepo := &mockUserRepository{
		FindBySIDFunc: func(ctx context.Context, sid string) (*user.User, error) {
			return reconstructAssignUser(t, 42, access.RoleAnalyst, uintPtr(7)), nil
		},
	}

	principal := access.NewPrincipal(10, access.RoleClientAdmin, uintPtr(7), nil)
	uc := NewAssignUserUseCase(areaRepo, assignmentRepo, userRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), AssignUserCommand{
		Principal: principal,
		AreaSID:   "ar_appsec1",
		UserSID:   "us_target1",
	})

	require.NoError(t, err)
	assert.True(t, result.IsActive)
	assert.Equal(t, uint(42), result.UserID)
	assert.Equal(t, uint(3), result.AreaID)
	require.NotNil(t, saved)
}

func TestAssignUserUseCase_Execute_CrossClientRejected(t *testing.T) {
	areaRepo := &mockAreaRepository{
		FindBySIDScopedFunc: func(ctx context.Context, sid string, scope access.Scope) (*area.Area, error) {
			return reconstructAssignArea(t, 3, 7), nil
		},
	}
	userRepo := &mockUserRepository{
		FindBySIDFunc: func(ctx context.Context, sid string) (*user.User, error) {
			return reconstructAssignUser(t, 42, access.RoleAnalyst, uintPtr(99)), nil
		},
	}

	principal := access.NewPrincipal(10, access.RoleOwner, nil, nil)
	uc := NewAssignUserUseCase(areaRepo, &mockAssignmentRepository{}, userRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), AssignUserCommand{
		Principal: principal,
		AreaSID:   "ar_appsec1",
		UserSID:   "us_target1",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestAssignUserUseCase_Execute_RevokedAssignmentIsRestored(t *testing.T) {
	revoked, err := area.ReconstructAssignment(9, 42, 3, false, time.Now().UTC(), time.Now().UTC())
	require.NoError(t, err)

	areaRepo := &mockAreaRepository{
		FindBySIDScopedFunc: func(ctx context.Context, sid string, scope access.Scope) (*area.Area, error) {
			return reconstructAssignArea(t, 3, 7), nil
		},
	}
	var updated *area.Assignment
	assignmentRepo := &mockAssignmentRepository{
		FindByUserAndAreaFunc: func(ctx context.Context, userID, areaID uint) (*area.Assignment, error) {
			return revoked, nil
		},
		UpdateFunc: func(ctx context.Context, as *area.Assignment) error {
			updated = as
			return nil
		},
	}
	userRepo := &mockUserRepository{
		FindBySIDFunc: func(ctx context.Context, sid string) (*user.User, error) {
			return reconstructAssignUser(t, 42, access.RoleViewer, uintPtr(7)), nil
		},
	}

	principal := access.NewPrincipal(10, access.RoleAreaAdmin, uintPtr(7), []uint{3})
	uc := NewAssignUserUseCase(areaRepo, assignmentRepo, userRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), AssignUserCommand{
		Principal: principal,
		AreaSID:   "ar_appsec1",
		UserSID:   "us_target1",
	})

	require.NoError(t, err)
	assert.True(t, result.IsActive)
	require.NotNil(t, updated)
	assert.True(t, updated.IsActive())
}

func TestAssignUserUseCase_Execute_AnalystCannotManage(t *testing.T) {
	areaRepo := &mockAreaRepository{
		FindBySIDScopedFunc: func(ctx context.Context, sid string, scope access.Scope) (*area.Area, error) {
			return reconstructAssignArea(t, 3, 7), nil
		},
	}

	principal := access.NewPrincipal(10, access.RoleAnalyst, uintPtr(7), []uint{3})
	uc := NewAssignUserUseCase(areaRepo, &mockAssignmentRepository{}, &mockUserRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), AssignUserCommand{
		Principal: principal,
		AreaSID:   "ar_appsec1",
		UserSID:   "us_target1",
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
