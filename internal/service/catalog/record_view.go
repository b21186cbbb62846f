package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/buildhub-dev/buildhub-backend/internal/domain"
)

// RecordView counts one view of an idea and returns the new total. The same
// visibility rules as GetIdea apply, so a guest cannot inflate counters on
// ideas it cannot read. Unlike the other counters, a failed view write is
// surfaced to the caller.
func (s *Service) RecordView(ctx context.Context, input RecordViewInput) (int, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	idea, err := s.ideas.GetByID(ctx, input.IdeaID)
	if err != nil {
		return 0, fmt.Errorf("record view: %w", err)
	}

	tier := tierFromCtx(ctx)
	if !idea.VisibleTo(tier) {
		return 0, fmt.Errorf("idea %s: %w", input.IdeaID, domain.ErrForbidden)
	}

	count, err := s.views.RecordView(ctx, input.IdeaID)
	if err != nil {
		return 0, err
	}

	s.log.DebugContext(ctx, "view recorded",
		slog.String("idea_id", input.IdeaID.String()),
		slog.Int("view_count", count),
	)

	return count, nil
}
