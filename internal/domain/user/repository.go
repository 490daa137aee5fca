package user

import (
	"context"

	"shieldtrack/internal/shared/query"
)

type Filter struct {
	query.BaseFilter
	ClientID   *uint
	Role       *string
	ActiveOnly bool
}

type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindBySID(ctx context.Context, sid string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter Filter) ([]*User, int64, error)
	Delete(ctx context.Context, id uint) error
}
