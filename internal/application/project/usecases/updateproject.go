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

type UpdateProjectCommand struct {
	Principal   access.Principal
	SID         string
	Name        string
	Description string
}

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewUpdateProjectUseCase(projectRepo project.Repository, logger logger.Interface) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{projectRepo: projectRepo, logger: logger}
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, cmd UpdateProjectCommand) (*dto.ProjectDTO, error) {
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

	if err := p.UpdateDetails(cmd.Name, cmd.Description); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update project", "project_sid", cmd.SID, "error", err)
		return nil, errors.NewInternalError("failed to update project")
	}

	return dto.ToProjectDTO(p), nil
}
