package usecases

import (
	"context"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/area"
	"shieldtrack/internal/domain/finding"
	"shieldtrack/internal/domain/project"
	"shieldtrack/internal/shared/logger"
)

type mockProjectRepository struct {
	SaveFunc            func(ctx context.Context, p *project.Project) error
	UpdateFunc          func(ctx context.Context, p *project.Project) error
	FindByIDFunc        func(ctx context.Context, id uint) (*project.Project, error)
	FindBySIDScopedFunc func(ctx context.Context, sid string, scope access.Scope) (*project.Project, error)
	ListFunc            func(ctx context.Context, filter project.Filter) ([]*project.Project, int64, error)
	VisibleIDsFunc      func(ctx context.Context, scope access.Scope) ([]uint, error)
	DeleteFunc          func(ctx context.Context, id uint) error
}

func (m *mockProjectRepository) Save(ctx context.Context, p *project.Project) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Update(ctx context.Context, p *project.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) FindByID(ctx context.Context, id uint) (*project.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProjectRepository) FindBySIDScoped(ctx context.Context, sid string, scope access.Scope) (*project.Project, error) {
	if m.FindBySIDScopedFunc != nil {
		return m.FindBySIDScopedFunc(ctx, sid, scope)
	}
	return nil, nil
}

func (m *mockProjectRepository) List(ctx context.Context, filter project.Filter) ([]*project.Project, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockProjectRepository) VisibleIDs(ctx context.Context, scope access.Scope) ([]uint, error) {
	if m.VisibleIDsFunc != nil {
		return m.VisibleIDsFunc(ctx, scope)
	}
	return nil, nil
}

func (m *mockProjectRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockAreaRepository struct {
	FindBySIDScopedFunc func(ctx context.Context, sid string, scope access.Scope) (*area.Area, error)
}

func (m *mockAreaRepository) Save(ctx context.Context, a *area.Area) error   { return nil }
func (m *mockAreaRepository) Update(ctx context.Context, a *area.Area) error { return nil }
func (m *mockAreaRepository) Delete(ctx context.Context, id uint) error      { return nil }

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
	return nil, 0, nil
}

type mockFindingRepository struct {
	CountByProjectFunc func(ctx context.Context, projectID uint) (int64, error)
}

func (m *mockFindingRepository) Save(ctx context.Context, f *finding.Finding) error   { return nil }
func (m *mockFindingRepository) Update(ctx context.Context, f *finding.Finding) error { return nil }
func (m *mockFindingRepository) Delete(ctx context.Context, id uint) error            { return nil }

func (m *mockFindingRepository) FindByID(ctx context.Context, id uint) (*finding.Finding, error) {
	return nil, nil
}

func (m *mockFindingRepository) FindBySIDScoped(ctx context.Context, sid string, scope access.Scope) (*finding.Finding, error) {
	return nil, nil
}

func (m *mockFindingRepository) List(ctx context.Context, filter finding.Filter) ([]*finding.Finding, int64, error) {
	return nil, 0, nil
}

func (m *mockFindingRepository) CountByProject(ctx context.Context, projectID uint) (int64, error) {
	if m.CountByProjectFunc != nil {
		return m.CountByProjectFunc(ctx, projectID)
	}
	return 0, nil
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
