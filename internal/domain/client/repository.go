package client

import (
	"context"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/shared/query"
)

// Filter narrows client listings. The scope is mandatory: repositories apply
// it before any other condition so out-of-scope rows never leave the store.
type Filter struct {
	query.BaseFilter
	Scope      access.Scope
	Name       *string
	ActiveOnly bool
}

type Repository interface {
	Save(ctx context.Context, c *Client) error
	Update(ctx context.Context, c *Client) error
	FindByID(ctx context.Context, id uint) (*Client, error)
	FindBySID(ctx context.Context, sid string) (*Client, error)
	// FindBySIDScoped returns not-found for rows outside the scope.
	FindBySIDScoped(ctx context.Context, sid string, scope access.Scope) (*Client, error)
	List(ctx context.Context, filter Filter) ([]*Client, int64, error)
	Delete(ctx context.Context, id uint) error
}
