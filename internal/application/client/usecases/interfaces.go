package usecases

import (
	"context"

	"shieldtrack/internal/application/client/dto"
)

type CreateClientExecutor interface {
	Execute(ctx context.Context, cmd CreateClientCommand) (*dto.ClientDTO, error)
}

type GetClientExecutor interface {
	Execute(ctx context.Context, query GetClientQuery) (*dto.ClientDTO, error)
}

type ListClientsExecutor interface {
	Execute(ctx context.Context, query ListClientsQuery) (*ListClientsResult, error)
}

type UpdateClientExecutor interface {
	Execute(ctx context.Context, cmd UpdateClientCommand) (*dto.ClientDTO, error)
}

type DeactivateClientExecutor interface {
	Execute(ctx context.Context, cmd DeactivateClientCommand) (*dto.ClientDTO, error)
}

type DeleteClientExecutor interface {
	Execute(ctx context.Context, cmd DeleteClientCommand) error
}
