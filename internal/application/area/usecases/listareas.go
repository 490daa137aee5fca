package usecases

import (
	"context"
	"fmt"

	"shieldtrack/internal/application/area/dto"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/area"
	"shieldtrack/internal/domain/client"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
	"shieldtrack/internal/shared/query"
)

type ListAreasQuery struct {
	Principal  access.Principal
	Page       int
	PageSize   int
	ClientSID  *string
	ActiveOnly bool
}

type ListAreasResult struct {
	Areas    []*dto.AreaDTO
	Total    int64
	Page     int
	PageSize int
}

type ListAreasUseCase struct {
	areaRepo   area.Repository
	clientRepo client.Repository
	logger     logger.Interface
}

func NewListAreasUseCase(
	areaRepo area.Repository,
	clientRepo client.Repository,
	logger logger.Interface,
) *ListAreasUseCase {
	return &ListAreasUseCase{
		areaRepo:   areaRepo,
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *ListAreasUseCase) Execute(ctx context.Context, q ListAreasQuery) (*ListAreasResult, error) {
	scope, err := access.ResolveScope(q.Principal)
	if err != nil {
		uc.logger.Errorw("scope resolution failed", "user_id", q.Principal.UserID(), "error", err)
		return nil, err
	}

	filter := area.Filter{
		BaseFilter: query.NewBaseFilter(query.WithPage(q.Page, q.PageSize)),
		Scope:      scope,
		ActiveOnly: q.ActiveOnly,
	}

	if q.ClientSID != nil {
		c, err := uc.clientRepo.FindBySIDScoped(ctx, *q.ClientSID, scope)
		if err != nil {
			if !errors.IsNotFoundError(err) {
				return nil, err
			}
			return nil, errors.NewNotFoundError(fmt.Sprintf("client %s not found", *q.ClientSID))
		}
		clientID := c.ID()
		filter.ClientID = &clientID
	}

	areas, total, err := uc.areaRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list areas", "error", err)
		return nil, errors.NewInternalError("failed to list areas")
	}

	return &ListAreasResult{
		Areas:    dto.ToAreaDTOs(areas),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
