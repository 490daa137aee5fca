package usecases

import (
	"context"
	"fmt"

	"shieldtrack/internal/application/area/dto"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/area"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
)

type ListAssignmentsQuery struct {
	Principal access.Principal
	AreaSID   string
}

type ListAssignmentsUseCase struct {
	areaRepo       area.Repository
	assignmentRepo area.AssignmentRepository
	logger         logger.Interface
}

func NewListAssignmentsUseCase(
	areaRepo area.Repository,
	assignmentRepo area.AssignmentRepository,
	logger logger.Interface,
) *ListAssignmentsUseCase {
	return &ListAssignmentsUseCase{
		areaRepo:       areaRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (uc *ListAssignmentsUseCase) Execute(ctx context.Context, q ListAssignmentsQuery) ([]*dto.AssignmentDTO, error) {
	if q.AreaSID == "" {
		return nil, errors.NewValidationError("area ID is required")
	}

	scope, err := access.ResolveScope(q.Principal)
	if err != nil {
		uc.logger.Errorw("scope resolution failed", "user_id", q.Principal.UserID(), "error", err)
		return nil, err
	}

	a, err := uc.areaRepo.FindBySIDScoped(ctx, q.AreaSID, scope)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewNotFoundError(fmt.Sprintf("area %s not found", q.AreaSID))
	}

	assignments, err := uc.assignmentRepo.ListForArea(ctx, a.ID())
	if err != nil {
		uc.logger.Errorw("failed to list assignments", "area_sid", q.AreaSID, "error", err)
		return nil, errors.NewInternalError("failed to list assignments")
	}

	return dto.ToAssignmentDTOs(assignments), nil
}
