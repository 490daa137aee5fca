package usecases

import (
	"context"
	"fmt"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/project"
	"shieldtrack/internal/shared/errors"
)

// resolveParentProject loads the owning project of a finding and returns it
// with its resource reference. Findings carry no client or area columns, so
// every guard decision routes through here.
func resolveParentProject(ctx context.Context, repo project.Repository, projectID uint) (*project.Project, access.ResourceRef, error) {
	p, err := repo.FindByID(ctx, projectID)
	if err != nil {
		return nil, access.ResourceRef{}, errors.NewInternalError(
			fmt.Sprintf("owning project %d could not be loaded", projectID))
	}

	areaID := p.AreaID()
	return p, access.ResourceRef{ClientID: p.ClientID(), AreaID: &areaID}, nil
}
