package usecases

import (
	"context"

	"shieldtrack/internal/application/user/dto"
)

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error)
}

type GetUserExecutor interface {
	Execute(ctx context.Context, query GetUserQuery) (*dto.UserDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}

type UpdateUserExecutor interface {
	Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error)
}

type DeactivateUserExecutor interface {
	Execute(ctx context.Context, cmd DeactivateUserCommand) (*dto.UserDTO, error)
}

// PasswordHasher mirrors the auth package interface; user administration
// needs to hash initial passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
