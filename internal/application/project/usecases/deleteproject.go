package usecases

import (
	"context"
	"fmt"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/finding"
	"shieldtrack/internal/domain/project"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
)

type DeleteProjectCommand struct {
	Principal access.Principal
	SID       string
}

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	findingRepo finding.Repository
	logger      logger.Interface
}

func NewDeleteProjectUseCase(
	projectRepo project.Repository,
	findingRepo finding.Repository,
	logger logger.Interface,
) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		projectRepo: projectRepo,
		findingRepo: findingRepo,
		logger:      logger,
	}
}

// Execute hard-deletes a project. Restricted to owners, and refused while
// findings still reference the project.
func (uc *DeleteProjectUseCase) Execute(ctx context.Context, cmd DeleteProjectCommand) error {
	if cmd.SID == "" {
		return errors.NewValidationError("project ID is required")
	}

	scope, err := access.ResolveScope(cmd.Principal)
	if err != nil {
		uc.logger.Errorw("scope resolution failed", "user_id", cmd.Principal.UserID(), "error", err)
		return err
	}

	p, err := uc.projectRepo.FindBySIDScoped(ctx, cmd.SID, scope)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return err
		}
		return errors.NewNotFoundError(fmt.Sprintf("project %s not found", cmd.SID))
	}

	areaID := p.AreaID()
	ref := access.ResourceRef{ClientID: p.ClientID(), AreaID: &areaID}
	if err := access.Authorize(cmd.Principal, ref, access.OperationDelete); err != nil {
		return err
	}

	count, err := uc.findingRepo.CountByProject(ctx, p.ID())
	if err != nil {
		uc.logger.Errorw("failed to count findings", "project_sid", cmd.SID, "error", err)
		return errors.NewInternalError("failed to delete project")
	}
	if count > 0 {
		return errors.NewConflictError(fmt.Sprintf("project still has %d findings", count))
	}

	if err := uc.projectRepo.Delete(ctx, p.ID()); err != nil {
		uc.logger.Errorw("failed to delete project", "project_sid", cmd.SID, "error", err)
		return errors.NewInternalError("failed to delete project")
	}

	uc.logger.Infow("project deleted", "project_sid", cmd.SID, "deleted_by", cmd.Principal.UserID())
	return nil
}
