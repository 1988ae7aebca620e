package impl

import (
	"context"

	"venturesroom/internal/domain/entity"
	domainerrors "venturesroom/internal/domain/errors"
	"venturesroom/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// tenantResolver maps an acting user to the startup it owns. An anonymous
// caller (uuid.Nil) only resolves in demo mode, where the oldest startup
// stands in as the tenant.
type tenantResolver struct {
	startupRepo repository.StartupRepository
	demoMode    bool
}

func (r *tenantResolver) resolveStartup(ctx context.Context, actorID uuid.UUID) (*entity.Startup, error) {
	if actorID == uuid.Nil {
		if !r.demoMode {
			return nil, domainerrors.ErrUnauthenticated
		}

		startup, err := r.startupRepo.FindFirst(ctx)
		if err != nil {
			if errors.Is(err, repository.ErrStartupNotFound) {
				return nil, domainerrors.ErrStartupNotFound
			}

			return nil, errors.Wrap(err, "failed to resolve demo tenant")
		}

		return startup, nil
	}

	startup, err := r.startupRepo.FindByOwner(ctx, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrStartupNotFound) {
			return nil, domainerrors.ErrStartupNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve startup tenant")
	}

	return startup, nil
}
