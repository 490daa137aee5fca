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

type CloseProjectCommand struct {
	Principal access.Principal
	SID       string
}

type CloseProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewCloseProjectUseCase(projectRepo project.Repository, logger logger.Interface) *CloseProjectUseCase {
	return &CloseProjectUseCase{projectRepo: projectRepo, logger: logger}
}

// Execute closes a project. This is the one-way transition: once closed the
// project never reopens and its findings stop accepting writes.
func (uc *CloseProjectUseCase) Execute(ctx context.Context, cmd CloseProjectCommand) (*dto.ProjectDTO, error) {
	if cmd.SID == "" {
		return nil, errors.NewValidationError("project ID is required")
	}

	scope, err := access.ResolveScope(cmd.Principal)
	if err != nil {
		uc.logger.Errorw("scope resolution failed", "user_id", cmd.Principal.UserID(), "error", err)
		return nil, err
	}

	p, err := uc.projectRepo.FindBySIDScoped(ctx, cmd.SID, scope)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewNotFoundError(fmt.Sprintf("project %s not found", cmd.SID))
	}

	areaID := p.AreaID()
	ref := access.ResourceRef{ClientID: p.ClientID(), AreaID: &areaID}
	if err := access.Authorize(cmd.Principal, ref, access.OperationClose); err != nil {
		return nil, err
	}

	if err := p.Close(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to persist project close", "project_sid", cmd.SID, "error", err)
		return nil, errors.NewInternalError("failed to close project")
	}

	uc.logger.Infow("project closed", "project_sid", cmd.SID, "closed_by", cmd.Principal.UserID())
	return dto.ToProjectDTO(p), nil
}
