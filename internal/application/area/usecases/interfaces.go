package usecases

import (
	"context"

	"shieldtrack/internal/application/area/dto"
)

type CreateAreaExecutor interface {
	Execute(ctx context.Context, cmd CreateAreaCommand) (*dto.AreaDTO, error)
}

type GetAreaExecutor interface {
	Execute(ctx context.Context, query GetAreaQuery) (*dto.AreaDTO, error)
}

type ListAreasExecutor interface {
	Execute(ctx context.Context, query ListAreasQuery) (*ListAreasResult, error)
}

type UpdateAreaExecutor interface {
	Execute(ctx context.Context, cmd UpdateAreaCommand) (*dto.AreaDTO, error)
}

type AssignUserExecutor interface {
	Execute(ctx context.Context, cmd AssignUserCommand) (*dto.AssignmentDTO, error)
}

type RevokeAssignmentExecutor interface {
	Execute(ctx context.Context, cmd RevokeAssignmentCommand) error
}

type ListAssignmentsExecutor interface {
	Execute(ctx context.Context, query ListAssignmentsQuery) ([]*dto.AssignmentDTO, error)
}
