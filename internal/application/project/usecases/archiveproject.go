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

type ArchiveProjectCommand struct {
	Principal access.Principal
	SID       string
}

type ArchiveProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewArchiveProjectUseCase(projectRepo project.Repository, logger logger.Interface) *ArchiveProjectUseCase {
	return &ArchiveProjectUseCase{projectRepo: projectRepo, logger: logger}
}

func (uc *ArchiveProjectUseCase) Execute(ctx context.Context, cmd ArchiveProjectCommand) (*dto.ProjectDTO, error) {
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
	if err := access.Authorize(cmd.Principal, ref, access.OperationWrite); err != nil {
		return nil, err
	}

	if err := p.Archive(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to persist project archive", "project_sid", cmd.SID, "error", err)
		return nil, errors.NewInternalError("failed to archive project")
	}

	return dto.ToProjectDTO(p), nil
}
