package usecases

import (
	"context"
	"fmt"

	"shieldtrack/internal/application/finding/dto"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/finding"
	"shieldtrack/internal/domain/project"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
	"shieldtrack/internal/shared/query"
)

type ListFindingsQuery struct {
	Principal  access.Principal
	Page       int
	PageSize   int
	ProjectSID *string
	Severity   *string
	Status     *string
	Tag        *string
}

type ListFindingsResult struct {
	Findings []*dto.FindingDTO
	Total    int64
	Page     int
	PageSize int
}

type ListFindingsUseCase struct {
	findingRepo finding.Repository
	projectRepo project.Repository
	logger      logger.Interface
}

func NewListFindingsUseCase(
	findingRepo finding.Repository,
	projectRepo project.Repository,
	logger logger.Interface,
) *ListFindingsUseCase {
	return &ListFindingsUseCase{
		findingRepo: findingRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *ListFindingsUseCase) Execute(ctx context.Context, q ListFindingsQuery) (*ListFindingsResult, error) {
	scope, err := access.ResolveScope(q.Principal)
	if err != nil {
		uc.logger.Errorw("scope resolution failed", "user_id", q.Principal.UserID(), "error", err)
		return nil, err
	}

	filter := finding.Filter{
		BaseFilter: query.NewBaseFilter(query.WithPage(q.Page, q.PageSize)),
		Scope:      scope,
		Tag:        q.Tag,
	}

	if q.ProjectSID != nil {
		// The project filter goes through the scoped fetch, so filtering by a
		// project outside the caller's scope reads as not found.
		p, err := uc.projectRepo.FindBySIDScoped(ctx, *q.ProjectSID, scope)
		if err != nil {
			if !errors.IsNotFoundError(err) {
				return nil, err
			}
			return nil, errors.NewNotFoundError(fmt.Sprintf("project %s not found", *q.ProjectSID))
		}
		projectID := p.ID()
		filter.ProjectID = &projectID
	}

	if q.Severity != nil {
		severity, err := finding.NewSeverity(*q.Severity)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Severity = &severity
	}
	if q.Status != nil {
		status, err := finding.NewStatus(*q.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	findings, total, err := uc.findingRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list findings", "error", err)
		return nil, errors.NewInternalError("failed to list findings")
	}

	return &ListFindingsResult{
		Findings: dto.ToFindingDTOs(findings),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
