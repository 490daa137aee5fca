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
)

type UpdateFindingCommand struct {
	Principal   access.Principal
	SID         string
	Title       string
	Description string
	Severity    string
	Tags        []string
}

type UpdateFindingUseCase struct {
	findingRepo finding.Repository
	projectRepo project.Repository
	logger      logger.Interface
}

func NewUpdateFindingUseCase(
	findingRepo finding.Repository,
	projectRepo project.Repository,
	logger logger.Interface,
) *UpdateFindingUseCase {
	return &UpdateFindingUseCase{
		findingRepo: findingRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *UpdateFindingUseCase) Execute(ctx context.Context, cmd UpdateFindingCommand) (*dto.FindingDTO, error) {
	if cmd.SID == "" {
		return nil, errors.NewValidationError("finding ID is required")
	}

	severity, err := finding.NewSeverity(cmd.Severity)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	scope, err := access.ResolveScope(cmd.Principal)
	if err != nil {
		uc.logger.Errorw("scope resolution failed", "user_id", cmd.Principal.UserID(), "error", err)
		return nil, err
	}

	f, err := uc.findingRepo.FindBySIDScoped(ctx, cmd.SID, scope)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewNotFoundError(fmt.Sprintf("finding %s not found", cmd.SID))
	}

	p, ref, err := resolveParentProject(ctx, uc.projectRepo, f.ProjectID())
	if err != nil {
		uc.logger.Errorw("failed to resolve owning project", "finding_sid", cmd.SID, "error", err)
		return nil, err
	}

	if err := access.Authorize(cmd.Principal, ref, access.OperationWrite); err != nil {
		return nil, err
	}

	if !p.FindingsMutable() {
		return nil, errors.NewValidationError(
			fmt.Sprintf("project %s is %s; its findings are read-only", p.SID(), p.Status()))
	}

	if err := f.UpdateDetails(cmd.Title, cmd.Description, severity, cmd.Tags); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.findingRepo.Update(ctx, f); err != nil {
		uc.logger.Errorw("failed to update finding", "finding_sid", cmd.SID, "error", err)
		return nil, errors.NewInternalError("failed to update finding")
	}

	return dto.ToFindingDTO(f), nil
}
