package usecases

import (
	"context"

	"shieldtrack/internal/application/project/dto"
)

type CreateProjectExecutor interface {
	Execute(ctx context.Context, cmd CreateProjectCommand) (*dto.ProjectDTO, error)
}

type GetProjectExecutor interface {
	Execute(ctx context.Context, query GetProjectQuery) (*dto.ProjectDTO, error)
}

type ListProjectsExecutor interface {
	Execute(ctx context.Context, query ListProjectsQuery) (*ListProjectsResult, error)
}

type UpdateProjectExecutor interface {
	Execute(ctx context.Context, cmd UpdateProjectCommand) (*dto.ProjectDTO, error)
}

type CloseProjectExecutor interface {
	Execute(ctx context.Context, cmd CloseProjectCommand) (*dto.ProjectDTO, error)
}

type ArchiveProjectExecutor interface {
	Execute(ctx context.Context, cmd ArchiveProjectCommand) (*dto.ProjectDTO, error)
}

type DeleteProjectExecutor interface {
	Execute(ctx context.Context, cmd DeleteProjectCommand) error
}
