package usecases

import (
	"context"

	"shieldtrack/internal/application/finding/dto"
)

type CreateFindingExecutor interface {
	Execute(ctx context.Context, cmd CreateFindingCommand) (*dto.FindingDTO, error)
}

type GetFindingExecutor interface {
	Execute(ctx context.Context, query GetFindingQuery) (*dto.FindingDTO, error)
}

type ListFindingsExecutor interface {
	Execute(ctx context.Context, query ListFindingsQuery) (*ListFindingsResult, error)
}

type UpdateFindingExecutor interface {
	Execute(ctx context.Context, cmd UpdateFindingCommand) (*dto.FindingDTO, error)
}

type ConfirmFindingExecutor interface {
	Execute(ctx context.Context, cmd ConfirmFindingCommand) (*dto.FindingDTO, error)
}

type CloseFindingExecutor interface {
	Execute(ctx context.Context, cmd CloseFindingCommand) (*dto.FindingDTO, error)
}

type DeleteFindingExecutor interface {
	Execute(ctx context.Context, cmd DeleteFindingCommand) error
}

type RenderFindingHTMLExecutor interface {
	Execute(ctx context.Context, query RenderFindingHTMLQuery) (*dto.FindingHTMLDTO, error)
}
