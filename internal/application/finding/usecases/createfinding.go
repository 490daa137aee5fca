package usecases

import (
	"context"
	"fmt"

	"shieldtrack/internal/application/finding/dto"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/finding"
	"shieldtrack/internal/domain/project"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/id"
	"shieldtrack/internal/shared/logger"
)

type CreateFindingCommand struct {
	Principal   access.Principal
	ProjectSID  string
	Title       string
	Description string
	Severity    string
	Tags        []string
}

type CreateFindingUseCase struct {
	findingRepo finding.Repository
	projectRepo project.Repository
	logger      logger.Interface
}

func NewCreateFindingUseCase(
	findingRepo finding.Repository,
	projectRepo project.Repository,
	logger logger.Interface,
) *CreateFindingUseCase {
	return &CreateFindingUseCase{
		findingRepo: findingRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *CreateFindingUseCase) Execute(ctx context.Context, cmd CreateFindingCommand) (*dto.FindingDTO, error) {
	if cmd.ProjectSID == "" {
		return nil, errors.NewValidationError("project is required")
	}
	if cmd.Title == "" {
		return nil, errors.NewValidationError("finding title is required")
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

	p, err := uc.projectRepo.FindBySIDScoped(ctx, cmd.ProjectSID, scope)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewNotFoundError(fmt.Sprintf("project %s not found", cmd.ProjectSID))
	}

	areaID := p.AreaID()
	ref := access.ResourceRef{ClientID: p.ClientID(), AreaID: &areaID}
	if err := access.Authorize(cmd.Principal, ref, access.OperationWrite); err != nil {
		return nil, err
	}

	if !p.FindingsMutable() {
		return nil, errors.NewValidationError(
			fmt.Sprintf("project %s is %s; findings cannot be added", p.SID(), p.Status()))
	}

	f, err := finding.NewFinding(id.NewFindingSID(), p.ID(), cmd.Title, cmd.Description, severity, cmd.Tags)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.findingRepo.Save(ctx, f); err != nil {
		uc.logger.Errorw("failed to save finding", "error", err)
		return nil, errors.NewInternalError("failed to create finding")
	}

	uc.logger.Infow("finding created", "finding_sid", f.SID(), "project_sid", p.SID(), "severity", severity)
	return dto.ToFindingDTO(f), nil
}
