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

func TestListFindingsUseCase_Execute_ScopeReachesRepository(t *testing.T) {
	var gotFilter finding.Filter
	findingRepo := &mockFindingRepository{
		ListFunc: func(ctx context.Context, filter finding.Filter) ([]*finding.Finding, int64, error) {
			gotFilter = filter
			return nil, 0, nil
		},
	}

	principal := access.NewPrincipal(10, access.RoleAnalyst, uintPtr(7), []uint{3, 5})
	uc := NewListFindingsUseCase(findingRepo, &mockProjectRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), ListFindingsQuery{Principal: principal, Page: 1, PageSize: 20})

	require.NoError(t, err)
	ids, bound := gotFilter.Scope.AreaIDs()
	assert.True(t, bound)
	assert.Equal(t, []uint{3, 5}, ids)
}

func TestListFindingsUseCase_Execute_NoAssignmentsStaysEmpty(t *testing.T) {
	var gotFilter finding.Filter
	findingRepo := &mockFindingRepository{
		ListFunc: func(ctx context.Context, filter finding.Filter) ([]*finding.Finding, int64, error) {
			gotFilter = filter
			return nil, 0, nil
		},
	}

	principal := access.NewPrincipal(10, access.RoleViewer, uintPtr(7), nil)
	uc := NewListFindingsUseCase(findingRepo, &mockProjectRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), ListFindingsQuery{Principal: principal})

	require.NoError(t, err)
	assert.True(t, gotFilter.Scope.IsEmpty(), "empty scope must reach the repository, not vanish")
	assert.Empty(t, result.Findings)
	assert.Zero(t, result.Total)
}

func TestListFindingsUseCase_Execute_ProjectFilterIsScoped(t *testing.T) {
	parent := reconstructParent(t, project.StatusActive)
	sid := "pr_parent1"

	projectRepo := &mockProjectRepository{
		FindBySIDScopedFunc: func(ctx context.Context, gotSID string, scope access.Scope) (*project.Project, error) {
			assert.Equal(t, sid, gotSID)
			return parent, nil
		},
	}
	var gotFilter finding.Filter
	findingRepo := &mockFindingRepository{
		ListFunc: func(ctx context.Context, filter finding.Filter) ([]*finding.Finding, int64, error) {
			gotFilter = filter
			return nil, 0, nil
		},
	}

	principal := access.NewPrincipal(10, access.RoleClientAdmin, uintPtr(7), nil)
	uc := NewListFindingsUseCase(findingRepo, projectRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), ListFindingsQuery{Principal: principal, ProjectSID: &sid})

	require.NoError(t, err)
	require.NotNil(t, gotFilter.ProjectID)
	assert.Equal(t, parent.ID(), *gotFilter.ProjectID)
}

func TestListFindingsUseCase_Execute_HiddenProjectFilterIsNotFound(t *testing.T) {
	sid := "pr_hidden"
	projectRepo := &mockProjectRepository{
		FindBySIDScopedFunc: func(ctx context.Context, gotSID string, scope access.Scope) (*project.Project, error) {
			return nil, errors.NewNotFoundError("record not found")
		},
	}

	principal := access.NewPrincipal(10, access.RoleAnalyst, uintPtr(7), []uint{3})
	uc := NewListFindingsUseCase(&mockFindingRepository{}, projectRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), ListFindingsQuery{Principal: principal, ProjectSID: &sid})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
