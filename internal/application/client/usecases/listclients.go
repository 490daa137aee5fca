package usecases

import (
	"context"

	"shieldtrack/internal/application/client/dto"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/client"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
	"shieldtrack/internal/shared/query"
)

type ListClientsQuery struct {
	Principal  access.Principal
	Page       int
	PageSize   int
	Name       *string
	ActiveOnly bool
}

type ListClientsResult struct {
	Clients  []*dto.ClientDTO
	Total    int64
	Page     int
	PageSize int
}

type ListClientsUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewListClientsUseCase(clientRepo client.Repository, logger logger.Interface) *ListClientsUseCase {
	return &ListClientsUseCase{clientRepo: clientRepo, logger: logger}
}

// Execute lists clients visible to the caller. A client-bound caller sees
// exactly their own client; the repository applies the scope.
func (uc *ListClientsUseCase) Execute(ctx context.Context, q ListClientsQuery) (*ListClientsResult, error) {
	scope, err := access.ResolveScope(q.Principal)
	if err != nil {
		uc.logger.Errorw("scope resolution failed", "user_id", q.Principal.UserID(), "error", err)
		return nil, err
	}

	filter := client.Filter{
		BaseFilter: query.NewBaseFilter(query.WithPage(q.Page, q.PageSize)),
		Scope:      scope,
		Name:       q.Name,
		ActiveOnly: q.ActiveOnly,
	}

	clients, total, err := uc.clientRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list clients", "error", err)
		return nil, errors.NewInternalError("failed to list clients")
	}

	return &ListClientsResult{
		Clients:  dto.ToClientDTOs(clients),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
