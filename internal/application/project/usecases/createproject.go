package usecases

import (
	"context"
	"fmt"

	"shieldtrack/internal/application/project/dto"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/area"
	"shieldtrack/internal/domain/project"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/id"
	"shieldtrack/internal/shared/logger"
)

type CreateProjectCommand struct {
	Principal   access.Principal
	AreaSID     string
	Name        string
	Description string
}

type CreateProjectUseCase struct {
	projectRepo project.Repository
	areaRepo    area.Repository
	logger      logger.Interface
}

func NewCreateProjectUseCase(
	projectRepo project.Repository,
	areaRepo area.Repository,
	logger logger.Interface,
) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
		areaRepo:    areaRepo,
		logger:      logger,
	}
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, cmd CreateProjectCommand) (*dto.ProjectDTO, error) {
	if cmd.AreaSID == "" {
		return nil, errors.NewValidationError("area is required")
	}
	if cmd.Name == "" {
		return nil, errors.NewValidationError("project name is required")
	}

	scope, err := access.ResolveScope(cmd.Principal)
	if err != nil {
		uc.logger.Errorw("scope resolution failed", "user_id", cmd.Principal.UserID(), "error", err)
		return nil, err
	}

	// The area determines the owning client; a project cannot be placed in
	// an area the caller cannot see.
	a, err := uc.areaRepo.FindBySIDScoped(ctx, cmd.AreaSID, scope)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewNotFoundError(fmt.Sprintf("area %s not found", cmd.AreaSID))
	}

	areaID := a.ID()
	ref := access.ResourceRef{ClientID: a.ClientID(), AreaID: &areaID}
	if err := access.Authorize(cmd.Principal, ref, access.OperationWrite); err != nil {
		return nil, err
	}

	p, err := project.NewProject(id.NewProjectSID(), a.ClientID(), areaID, cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Save(ctx, p); err != nil {
		uc.logger.Errorw("failed to save project", "error", err)
		return nil, errors.NewInternalError("failed to create project")
	}

	uc.logger.Infow("project created", "project_sid", p.SID(), "area_id", areaID)
	return dto.ToProjectDTO(p), nil
}
