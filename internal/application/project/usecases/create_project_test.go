package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/area"
	"shieldtrack/internal/domain/project"
	"shieldtrack/internal/shared/errors"
)

func reconstructTestArea(t *testing.T, id, clientID uint) *area.Area {
	t.Helper()
	now := time.Now().UTC()
	a, err := area.ReconstructArea(id, "ar_net123", clientID, "Network Security", true, now, now)
	require.NoError(t, err)
	return a
}

func TestCreateProjectUseCase_Execute_Success(t *testing.T) {
	var saved *project.Project
	areaRepo := &mockAreaRepository{
		FindBySIDScopedFunc: func(ctx context.Context, sid string, scope access.Scope) (*area.Area, error) {
			return reconstructTestArea(t, 3, 7), nil
		},
	}
	projectRepo := &mockProjectRepository{
		SaveFunc: func(ctx context.Context, p *project.Project) error {
			saved = p
			return nil
		},
	}

	principal := access.NewPrincipal(10, access.RoleAreaAdmin, uintPtr(7), []uint{3})
	uc := NewCreateProjectUseCase(projectRepo, areaRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), CreateProjectCommand{
		Principal: principal,
		AreaSID:   "ar_net123",
		Name:      "Internal Pentest Q4",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(7), result.ClientID)
	assert.Equal(t, uint(3), result.AreaID)
	assert.Equal(t, project.StatusActive.String(), result.Status)
	require.NotNil(t, saved)
	assert.NotEmpty(t, saved.SID())
}

func TestCreateProjectUseCase_Execute_ViewerDenied(t *testing.T) {
	areaRepo := &mockAreaRepository{
		FindBySIDScopedFunc: func(ctx context.Context, sid string, scope access.Scope) (*area.Area, error) {
			return reconstructTestArea(t, 3, 7), nil
		},
	}

	principal := access.NewPrincipal(10, access.RoleViewer, uintPtr(7), []uint{3})
	uc := NewCreateProjectUseCase(&mockProjectRepository{}, areaRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateProjectCommand{
		Principal: principal,
		AreaSID:   "ar_net123",
		Name:      "Should Not Exist",
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestCreateProjectUseCase_Execute_AreaOutOfScope(t *testing.T) {
	areaRepo := &mockAreaRepository{
		FindBySIDScopedFunc: func(ctx context.Context, sid string, scope access.Scope) (*area.Area, error) {
			return nil, errors.NewNotFoundError("record not found")
		},
	}

	principal := access.NewPrincipal(10, access.RoleAnalyst, uintPtr(7), []uint{3})
	uc := NewCreateProjectUseCase(&mockProjectRepository{}, areaRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateProjectCommand{
		Principal: principal,
		AreaSID:   "ar_other",
		Name:      "X",
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCreateProjectUseCase_Execute_MissingFields(t *testing.T) {
	principal := access.NewPrincipal(10, access.RoleOwner, nil, nil)
	uc := NewCreateProjectUseCase(&mockProjectRepository{}, &mockAreaRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateProjectCommand{Principal: principal, Name: "X"})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), CreateProjectCommand{Principal: principal, AreaSID: "ar_a"})
	assert.True(t, errors.IsValidationError(err))
}
