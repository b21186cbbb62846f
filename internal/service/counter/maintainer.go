// Package counter maintains the denormalized aggregate counters stored on
// ideas. Comment and project counter updates are best-effort: a failed
// adjustment is logged and swallowed so the triggering write still succeeds,
// and the periodic reconciler repairs any drift later.
package counter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

type ideaCounterRepo interface {
	IncrementViewCount(ctx context.Context, ideaID uuid.UUID) (int, error)
	AdjustCommentCount(ctx context.Context, ideaID uuid.UUID, delta int) error
	AdjustProjectCount(ctx context.Context, ideaID uuid.UUID, delta int) (int, error)
}

// Maintainer applies counter deltas on behalf of the content services.
type Maintainer struct {
	ideas ideaCounterRepo
	log   *slog.Logger
}

// NewMaintainer creates a counter maintainer.
func NewMaintainer(log *slog.Logger, ideas ideaCounterRepo) *Maintainer {
	return &Maintainer{
		ideas: ideas,
		log:   log.With("service", "counter"),
	}
}

// RecordView atomically bumps an idea's view count and returns the new value.
// Unlike the comment/project adjustments, failure here is surfaced: the new
// count is part of the caller's response.
func (m *Maintainer) RecordView(ctx context.Context, ideaID uuid.UUID) (int, error) {
	count, err := m.ideas.IncrementViewCount(ctx, ideaID)
	if err != nil {
		return 0, fmt.Errorf("record view: %w", err)
	}
	return count, nil
}

// CommentAdded bumps the comment counter after a top-level comment is created.
// Best-effort: errors are logged, never returned.
func (m *Maintainer) CommentAdded(ctx context.Context, ideaID uuid.UUID) {
	if err := m.ideas.AdjustCommentCount(ctx, ideaID, 1); err != nil {
		m.logAdjustFailure(ctx, "comment_count", ideaID, 1, err)
	}
}

// CommentsRemoved lowers the comment counter after a thread deletion removed
// n top-level comments. Best-effort: errors are logged, never returned.
func (m *Maintainer) CommentsRemoved(ctx context.Context, ideaID uuid.UUID, n int) {
	if n <= 0 {
		return
	}
	if err := m.ideas.AdjustCommentCount(ctx, ideaID, -n); err != nil {
		m.logAdjustFailure(ctx, "comment_count", ideaID, -n, err)
	}
}

// ProjectAdded bumps the project counter and returns the stored total, so
// the caller can report a count consistent with concurrent submissions.
// Best-effort: on failure the error is logged and ok is false, leaving the
// caller to fall back on its own row count.
func (m *Maintainer) ProjectAdded(ctx context.Context, ideaID uuid.UUID) (count int, ok bool) {
	count, err := m.ideas.AdjustProjectCount(ctx, ideaID, 1)
	if err != nil {
		m.logAdjustFailure(ctx, "project_count", ideaID, 1, err)
		return 0, false
	}
	return count, true
}

// ProjectRemoved lowers the project counter. Best-effort.
func (m *Maintainer) ProjectRemoved(ctx context.Context, ideaID uuid.UUID) {
	if _, err := m.ideas.AdjustProjectCount(ctx, ideaID, -1); err != nil {
		m.logAdjustFailure(ctx, "project_count", ideaID, -1, err)
	}
}

func (m *Maintainer) logAdjustFailure(ctx context.Context, counter string, ideaID uuid.UUID, delta int, err error) {
	m.log.WarnContext(ctx, "counter adjustment failed",
		slog.String("counter", counter),
		slog.String("idea_id", ideaID.String()),
		slog.Int("delta", delta),
		slog.Any("error", err),
	)
}
