package finding

import (
	"context"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/shared/query"
)

type Filter struct {
	query.BaseFilter
	Scope     access.Scope
	ProjectID *uint
	Severity  *Severity
	Status    *Status
	Tag       *string
}

// Repository lists findings through the owning project. Implementations must
// resolve the scope's visible project ids first and constrain every query to
// that set; an empty set matches nothing.
type Repository interface {
	Save(ctx context.Context, f *Finding) error
	Update(ctx context.Context, f *Finding) error
	FindByID(ctx context.Context, id uint) (*Finding, error)
	FindBySIDScoped(ctx context.Context, sid string, scope access.Scope) (*Finding, error)
	List(ctx context.Context, filter Filter) ([]*Finding, int64, error)
	CountByProject(ctx context.Context, projectID uint) (int64, error)
	Delete(ctx context.Context, id uint) error
}
