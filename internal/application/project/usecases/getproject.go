package usecases

import (
	"context"
	"fmt"

	"shieldtrack/internal/application/project/dto"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/project"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
)

type GetProjectQuery struct {
	Principal access.Principal
	SID       string
}

type GetProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewGetProjectUseCase(projectRepo project.Repository, logger logger.Interface) *GetProjectUseCase {
	return &GetProjectUseCase{projectRepo: projectRepo, logger: logger}
}

// Execute fetches through the scoped query, so an out-of-scope project is
// indistinguishable from a missing one.
func (uc *GetProjectUseCase) Execute(ctx context.Context, query GetProjectQuery) (*dto.ProjectDTO, error) {
	if query.SID == "" {
		return nil, errors.NewValidationError("project ID is required")
	}

	scope, err := access.ResolveScope(query.Principal)
	if err != nil {
		uc.logger.Errorw("scope resolution failed", "user_id", query.Principal.UserID(), "error", err)
		return nil, err
	}

	p, err := uc.projectRepo.FindBySIDScoped(ctx, query.SID, scope)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewNotFoundError(fmt.Sprintf("project %s not found", query.SID))
	}

	return dto.ToProjectDTO(p), nil
}
