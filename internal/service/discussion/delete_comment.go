package discussion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/buildhub-dev/buildhub-backend/internal/domain"
	"github.com/buildhub-dev/buildhub-backend/pkg/ctxutil"
)

// DeleteResult reports what a cascading comment deletion removed.
type DeleteResult struct {
	// Deleted is the number of comments removed, the target included.
	Deleted int
	// TopLevelRemoved is how many of them were top-level: 1 when the target
	// started a thread, 0 when it was a reply. This is the amount the idea's
	// comment counter goes down by.
	TopLevelRemoved int
}

// DeleteComment removes a comment and its entire reply subtree. Author-only.
// The pre-delete count and the delete run in one transaction so the counter
// decrement is derived from exactly what was removed.
func (s *Service) DeleteComment(ctx context.Context, input DeleteCommentInput) (*DeleteResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.comments.GetByID(ctx, input.CommentID)
	if err != nil {
		return nil, fmt.Errorf("delete comment: %w", err)
	}
	if existing.AuthorID != userID {
		return nil, fmt.Errorf("comment %s: %w", input.CommentID, domain.ErrForbidden)
	}

	var result DeleteResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		total, topLevel, err := s.comments.CountThread(txCtx, input.CommentID)
		if err != nil {
			return fmt.Errorf("count thread: %w", err)
		}

		deleted, err := s.comments.DeleteThread(txCtx, input.CommentID)
		if err != nil {
			return fmt.Errorf("delete thread: %w", err)
		}
		if deleted != total {
			// Concurrent writes inside the tx window; trust the delete.
			s.log.WarnContext(txCtx, "thread count drifted during delete",
				slog.Int("counted", total),
				slog.Int("deleted", deleted),
			)
		}

		result = DeleteResult{Deleted: deleted, TopLevelRemoved: topLevel}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Counter decrement stays outside the transaction; a miss is repaired
	// by the periodic reconciler.
	s.counter.CommentsRemoved(ctx, existing.IdeaID, result.TopLevelRemoved)

	s.log.InfoContext(ctx, "comment thread deleted",
		slog.String("user_id", userID.String()),
		slog.String("comment_id", input.CommentID.String()),
		slog.Int("deleted", result.Deleted),
		slog.Int("top_level_removed", result.TopLevelRemoved),
	)

	return &result, nil
}
