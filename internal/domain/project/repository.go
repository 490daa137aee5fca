package project

import (
	"context"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/shared/query"
)

type Filter struct {
	query.BaseFilter
	Scope    access.Scope
	ClientID *uint
	AreaID   *uint
	Status   *Status
}

type Repository interface {
	Save(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	FindByID(ctx context.Context, id uint) (*Project, error)
	FindBySIDScoped(ctx context.Context, sid string, scope access.Scope) (*Project, error)
	List(ctx context.Context, filter Filter) ([]*Project, int64, error)
	// VisibleIDs resolves the project ids admitted by the scope. The finding
	// repository uses this for the two-step visibility lookup.
	VisibleIDs(ctx context.Context, scope access.Scope) ([]uint, error)
	Delete(ctx context.Context, id uint) error
}
