package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/finding"
	"shieldtrack/internal/domain/project"
	"shieldtrack/internal/shared/errors"
)

func TestCreateFindingUseCase_Execute_Success(t *testing.T) {
	parent := reconstructParent(t, project.StatusActive)

	var saved *finding.Finding
	findingRepo := &mockFindingRepository{
		SaveFunc: func(ctx context.Context, f *finding.Finding) error {
			saved = f
			return nil
		},
	}
	projectRepo := &mockProjectRepository{
		FindBySIDScopedFunc: func(ctx context.Context, sid string, scope access.Scope) (*project.Project, error) {
			return parent, nil
		},
	}

	principal := access.NewPrincipal(10, access.RoleAnalyst, uintPtr(7), []uint{3})
	uc := NewCreateFindingUseCase(findingRepo, projectRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), CreateFindingCommand{
		Principal:   principal,
		ProjectSID:  "pr_parent1",
		Title:       "IDOR on invoice download",
		Description: "sequential ids",
		Severity:    "medium",
		Tags:        []string{"idor", "api"},
	})

	require.NoError(t, err)
	assert.Equal(t, finding.StatusOpen.String(), result.Status)
	assert.Equal(t, parent.ID(), result.ProjectID)
	require.NotNil(t, saved)
	assert.NotEmpty(t, saved.SID())
}

func TestCreateFindingUseCase_Execute_ClosedProjectRejected(t *testing.T) {
	parent := reconstructParent(t, project.StatusClosed)

	projectRepo := &mockProjectRepository{
		FindBySIDScopedFunc: func(ctx context.Context, sid string, scope access.Scope) (*project.Project, error) {
			return parent, nil
		},
	}

	principal := access.NewPrincipal(10, access.RoleClientAdmin, uintPtr(7), nil)
	uc := NewCreateFindingUseCase(&mockFindingRepository{}, projectRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateFindingCommand{
		Principal:  principal,
		ProjectSID: "pr_parent1",
		Title:      "Late finding",
		Severity:   "low",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateFindingUseCase_Execute_ProjectOutOfScope(t *testing.T) {
	projectRepo := &mockProjectRepository{
		FindBySIDScopedFunc: func(ctx context.Context, sid string, scope access.Scope) (*project.Project, error) {
			return nil, errors.NewNotFoundError("record not found")
		},
	}

	principal := access.NewPrincipal(10, access.RoleAnalyst, uintPtr(7), []uint{3})
	uc := NewCreateFindingUseCase(&mockFindingRepository{}, projectRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateFindingCommand{
		Principal:  principal,
		ProjectSID: "pr_elsewhere",
		Title:      "X",
		Severity:   "info",
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCreateFindingUseCase_Execute_InvalidSeverity(t *testing.T) {
	principal := access.NewPrincipal(10, access.RoleAnalyst, uintPtr(7), []uint{3})
	uc := NewCreateFindingUseCase(&mockFindingRepository{}, &mockProjectRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateFindingCommand{
		Principal:  principal,
		ProjectSID: "pr_parent1",
		Title:      "X",
		Severity:   "catastrophic",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
