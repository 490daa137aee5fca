package usecases

import (
	"context"

	"shieldtrack/internal/application/project/dto"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/project"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
	"shieldtrack/internal/shared/query"
)

type ListProjectsQuery struct {
	Principal access.Principal
	Page      int
	PageSize  int
	ClientID  *uint
	AreaID    *uint
	Status    *string
}

type ListProjectsResult struct {
	Projects []*dto.ProjectDTO
	Total    int64
	Page     int
	PageSize int
}

type ListProjectsUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewListProjectsUseCase(projectRepo project.Repository, logger logger.Interface) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: projectRepo, logger: logger}
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, q ListProjectsQuery) (*ListProjectsResult, error) {
	scope, err := access.ResolveScope(q.Principal)
	if err != nil {
		uc.logger.Errorw("scope resolution failed", "user_id", q.Principal.UserID(), "error", err)
		return nil, err
	}

	filter := project.Filter{
		BaseFilter: query.NewBaseFilter(query.WithPage(q.Page, q.PageSize)),
		Scope:      scope,
		ClientID:   q.ClientID,
		AreaID:     q.AreaID,
	}
	if q.Status != nil {
		status, err := project.NewStatus(*q.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	projects, total, err := uc.projectRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list projects", "error", err)
		return nil, errors.NewInternalError("failed to list projects")
	}

	return &ListProjectsResult{
		Projects: dto.ToProjectDTOs(projects),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
