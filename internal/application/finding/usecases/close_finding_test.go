package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/finding"
	"shieldtrack/internal/domain/project"
	"shieldtrack/internal/shared/errors"
)

func uintPtr(v uint) *uint { return &v }

func reconstructParent(t *testing.T, status project.Status) *project.Project {
	t.Helper()
	now := time.Now().UTC()
	var closedAt *time.Time
	if status.IsClosed() {
		ts := now.Add(-time.Hour)
		closedAt = &ts
	}
	p, err := project.ReconstructProject(
		20, "pr_parent1", 7, 3, "Web App Review", "",
		status, now.Add(-48*time.Hour), now, closedAt,
	)
	require.NoError(t, err)
	return p
}

func reconstructOpenFinding(t *testing.T) *finding.Finding {
	t.Helper()
	now := time.Now().UTC()
	f, err := finding.ReconstructFinding(
		5, "fd_xss001", 20,
		"Stored XSS in comments", "payload survives sanitization",
		finding.SeverityHigh, finding.StatusOpen, "",
		[]string{"xss"}, now.Add(-time.Hour), now.Add(-time.Hour), nil,
	)
	require.NoError(t, err)
	return f
}

func TestCloseFindingUseCase_Execute_Success(t *testing.T) {
	existing := reconstructOpenFinding(t)
	parent := reconstructParent(t, project.StatusActive)

	var updated *finding.Finding
	findingRepo := &mockFindingRepository{
		FindBySIDScopedFunc: func(ctx context.Context, sid string, scope access.Scope) (*finding.Finding, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, f *finding.Finding) error {
			updated = f
			return nil
		},
	}
	projectRepo := &mockProjectRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*project.Project, error) {
			return parent, nil
		},
	}

	principal := access.NewPrincipal(10, access.RoleAnalyst, uintPtr(7), []uint{3})
	uc := NewCloseFindingUseCase(findingRepo, projectRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), CloseFindingCommand{
		Principal: principal,
		SID:       "fd_xss001",
		Reason:    "fixed in 2.4.1",
	})

	require.NoError(t, err)
	assert.Equal(t, finding.StatusClosed.String(), result.Status)
	assert.Equal(t, "fixed in 2.4.1", result.CloseReason)
	require.NotNil(t, updated)
	assert.True(t, updated.Status().IsClosed())
}

func TestCloseFindingUseCase_Execute_ClosedProjectFreezesFindings(t *testing.T) {
	existing := reconstructOpenFinding(t)
	parent := reconstructParent(t, project.StatusClosed)

	findingRepo := &mockFindingRepository{
		FindBySIDScopedFunc: func(ctx context.Context, sid string, scope access.Scope) (*finding.Finding, error) {
			return existing, nil
		},
	}
	projectRepo := &mockProjectRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*project.Project, error) {
			return parent, nil
		},
	}

	principal := access.NewPrincipal(10, access.RoleOwner, nil, nil)
	uc := NewCloseFindingUseCase(findingRepo, projectRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), CloseFindingCommand{
		Principal: principal,
		SID:       "fd_xss001",
		Reason:    "too late",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, finding.StatusOpen, existing.Status())
}

func TestCloseFindingUseCase_Execute_ViewerDenied(t *testing.T) {
	existing := reconstructOpenFinding(t)
	parent := reconstructParent(t, project.StatusActive)

	findingRepo := &mockFindingRepository{
		FindBySIDScopedFunc: func(ctx context.Context, sid string, scope access.Scope) (*finding.Finding, error) {
			return existing, nil
		},
	}
	projectRepo := &mockProjectRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*project.Project, error) {
			return parent, nil
		},
	}

	principal := access.NewPrincipal(10, access.RoleViewer, uintPtr(7), []uint{3})
	uc := NewCloseFindingUseCase(findingRepo, projectRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), CloseFindingCommand{
		Principal: principal,
		SID:       "fd_xss001",
		Reason:    "nope",
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestCloseFindingUseCase_Execute_OutOfScopeIsNotFound(t *testing.T) {
	findingRepo := &mockFindingRepository{
		FindBySIDScopedFunc: func(ctx context.Context, sid string, scope access.Scope) (*finding.Finding, error) {
			return nil, errors.NewNotFoundError("record not found")
		},
	}

	principal := access.NewPrincipal(10, access.RoleAnalyst, uintPtr(7), []uint{3})
	uc := NewCloseFindingUseCase(findingRepo, &mockProjectRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), CloseFindingCommand{
		Principal: principal,
		SID:       "fd_hidden",
		Reason:    "x",
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCloseFindingUseCase_Execute_MissingReason(t *testing.T) {
	principal := access.NewPrincipal(10, access.RoleAnalyst, uintPtr(7), []uint{3})
	uc := NewCloseFindingUseCase(&mockFindingRepository{}, &mockProjectRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), CloseFindingCommand{Principal: principal, SID: "fd_x"})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
