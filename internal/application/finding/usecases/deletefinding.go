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

type DeleteFindingCommand struct {
	Principal access.Principal
	SID       string
}

type DeleteFindingUseCase struct {
	findingRepo finding.Repository
	projectRepo project.Repository
	logger      logger.Interface
}

func NewDeleteFindingUseCase(
	findingRepo finding.Repository,
	projectRepo project.Repository,
	logger logger.Interface,
) *DeleteFindingUseCase {
	return &DeleteFindingUseCase{
		findingRepo: findingRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *DeleteFindingUseCase) Execute(ctx context.Context, cmd DeleteFindingCommand) error {
	if cmd.SID == "" {
		return errors.NewValidationError("finding ID is required")
	}

	scope, err := access.ResolveScope(cmd.Principal)
	if err != nil {
		uc.logger.Errorw("scope resolution failed", "user_id", cmd.Principal.UserID(), "error", err)
		return err
	}

	f, err := uc.findingRepo.FindBySIDScoped(ctx, cmd.SID, scope)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return err
		}
		return errors.NewNotFoundError(fmt.Sprintf("finding %s not found", cmd.SID))
	}

	_, ref, err := resolveParentProject(ctx, uc.projectRepo, f.ProjectID())
	if err != nil {
		uc.logger.Errorw("failed to resolve owning project", "finding_sid", cmd.SID, "error", err)
		return err
	}

	if err := access.Authorize(cmd.Principal, ref, access.OperationDelete); err != nil {
		return err
	}

	if err := uc.findingRepo.Delete(ctx, f.ID()); err != nil {
		uc.logger.Errorw("failed to delete finding", "finding_sid", cmd.SID, "error", err)
		return errors.NewInternalError("failed to delete finding")
	}

	uc.logger.Infow("finding deleted", "finding_sid", cmd.SID, "deleted_by", cmd.Principal.UserID())
	return nil
}
