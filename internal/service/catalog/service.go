// Package catalog serves the curated idea catalog: tier-aware listing,
// detail access with teaser shaping, and view recording.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/buildhub-dev/buildhub-backend/internal/adapter/postgres/idea"
	"github.com/buildhub-dev/buildhub-backend/internal/domain"
	"github.com/buildhub-dev/buildhub-backend/pkg/ctxutil"
)

type ideaRepo interface {
	GetByID(ctx context.Context, ideaID uuid.UUID) (*domain.Idea, error)
	List(ctx context.Context, f idea.Filter) ([]domain.Idea, int, error)
}

type viewRecorder interface {
	RecordView(ctx context.Context, ideaID uuid.UUID) (int, error)
}

// Service provides catalog read operations.
type Service struct {
	ideas ideaRepo
	views viewRecorder
	log   *slog.Logger
}

// NewService creates a new Catalog service.
func NewService(log *slog.Logger, ideas ideaRepo, views viewRecorder) *Service {
	return &Service{
		ideas: ideas,
		views: views,
		log:   log.With("service", "catalog"),
	}
}

// tierFromCtx derives the caller's tier from the request context. Anybody
// without an authenticated user id is a guest.
func tierFromCtx(ctx context.Context) domain.Tier {
	if _, ok := ctxutil.UserIDFromCtx(ctx); ok {
		return domain.TierAuthenticated
	}
	return domain.TierGuest
}
