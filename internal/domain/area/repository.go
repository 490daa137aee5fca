package area

import (
	"context"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/shared/query"
)

type Filter struct {
	query.BaseFilter
	Scope      access.Scope
	ClientID   *uint
	ActiveOnly bool
}

type Repository interface {
	Save(ctx context.Context, a *Area) error
	Update(ctx context.Context, a *Area) error
	FindByID(ctx context.Context, id uint) (*Area, error)
	FindBySIDScoped(ctx context.Context, sid string, scope access.Scope) (*Area, error)
	List(ctx context.Context, filter Filter) ([]*Area, int64, error)
	Delete(ctx context.Context, id uint) error
}

type AssignmentRepository interface {
	Save(ctx context.Context, as *Assignment) error
	Update(ctx context.Context, as *Assignment) error
	FindByUserAndArea(ctx context.Context, userID, areaID uint) (*Assignment, error)
	// ActiveAreaIDsForUser returns the area ids of the user's active
	// assignments. This feeds principal construction on every request.
	ActiveAreaIDsForUser(ctx context.Context, userID uint) ([]uint, error)
	ListForArea(ctx context.Context, areaID uint) ([]*Assignment, error)
}
