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

type CloseFindingCommand struct {
	Principal access.Principal
	SID       string
	Reason    string
}

type CloseFindingUseCase struct {
	findingRepo finding.Repository
	projectRepo project.Repository
	logger      logger.Interface
}

func NewCloseFindingUseCase(
	findingRepo finding.Repository,
	projectRepo project.Repository,
	logger logger.Interface,
) *CloseFindingUseCase {
	return &CloseFindingUseCase{
		findingRepo: findingRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *CloseFindingUseCase) Execute(ctx context.Context, cmd CloseFindingCommand) (*dto.FindingDTO, error) {
	if cmd.SID == "" {
		return nil, errors.NewValidationError("finding ID is required")
	}
	if cmd.Reason == "" {
		return nil, errors.NewValidationError("close reason is required")
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

	// Closing a finding is an ordinary write, unlike closing a project.
	if err := access.Authorize(cmd.Principal, ref, access.OperationWrite); err != nil {
		return nil, err
	}

	if !p.FindingsMutable() {
		return nil, errors.NewValidationError(
			fmt.Sprintf("project %s is %s; its findings are read-only", p.SID(), p.Status()))
	}

	if err := f.Close(cmd.Reason); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.findingRepo.Update(ctx, f); err != nil {
		uc.logger.Errorw("failed to persist finding close", "finding_sid", cmd.SID, "error", err)
		return nil, errors.NewInternalError("failed to close finding")
	}

	uc.logger.Infow("finding closed", "finding_sid", cmd.SID, "closed_by", cmd.Principal.UserID())
	return dto.ToFindingDTO(f), nil
}
