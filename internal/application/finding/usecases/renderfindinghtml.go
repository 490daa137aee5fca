package usecases

import (
	"context"
	"fmt"

	"shieldtrack/internal/application/finding/dto"
	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/finding"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/logger"
	"shieldtrack/internal/shared/services/markdown"
)

type RenderFindingHTMLQuery struct {
	Principal access.Principal
	SID       string
}

type RenderFindingHTMLUseCase struct {
	findingRepo finding.Repository
	markdown    markdown.Service
	logger      logger.Interface
}

func NewRenderFindingHTMLUseCase(
	findingRepo finding.Repository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *RenderFindingHTMLUseCase {
	return &RenderFindingHTMLUseCase{
		findingRepo: findingRepo,
		markdown:    markdownSvc,
		logger:      logger,
	}
}

// Execute renders the finding description as sanitized HTML.
func (uc *RenderFindingHTMLUseCase) Execute(ctx context.Context, query RenderFindingHTMLQuery) (*dto.FindingHTMLDTO, error) {
	if query.SID == "" {
		return nil, errors.NewValidationError("finding ID is required")
	}

	scope, err := access.ResolveScope(query.Principal)
	if err != nil {
		uc.logger.Errorw("scope resolution failed", "user_id", query.Principal.UserID(), "error", err)
		return nil, err
	}

	f, err := uc.findingRepo.FindBySIDScoped(ctx, query.SID, scope)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewNotFoundError(fmt.Sprintf("finding %s not found", query.SID))
	}

	rendered, err := uc.markdown.ToHTMLSanitized(f.Description())
	if err != nil {
		uc.logger.Errorw("failed to render finding description", "finding_sid", query.SID, "error", err)
		return nil, errors.NewInternalError("failed to render finding")
	}

	return &dto.FindingHTMLDTO{
		SID:   f.SID(),
		Title: f.Title(),
		HTML:  rendered,
	}, nil
}
