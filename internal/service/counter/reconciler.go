package counter

import (
	"context"
	"log/slog"
	"time"
)

type reconcileRepo interface {
	ReconcileCounts(ctx context.Context) (int64, error)
}

// Reconciler recomputes drifted idea counters from the underlying rows.
// It runs on a schedule; drift accumulates because comment/project counter
// updates are best-effort.
type Reconciler struct {
	ideas reconcileRepo
	log   *slog.Logger
}

// NewReconciler creates a counter reconciler.
func NewReconciler(log *slog.Logger, ideas reconcileRepo) *Reconciler {
	return &Reconciler{
		ideas: ideas,
		log:   log.With("service", "counter"),
	}
}

// Run performs one reconciliation pass. Safe to call concurrently with
// serving traffic; only drifted rows are touched.
func (r *Reconciler) Run(ctx context.Context) {
	start := time.Now()

	corrected, err := r.ideas.ReconcileCounts(ctx)
	if err != nil {
		r.log.ErrorContext(ctx, "counter reconciliation failed", slog.Any("error", err))
		return
	}

	r.log.InfoContext(ctx, "counter reconciliation complete",
		slog.Int64("ideas_corrected", corrected),
		slog.Duration("elapsed", time.Since(start)),
	)
}
