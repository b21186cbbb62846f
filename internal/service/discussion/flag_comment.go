package discussion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/buildhub-dev/buildhub-backend/internal/domain"
	"github.com/buildhub-dev/buildhub-backend/pkg/ctxutil"
)

// FlagComment marks a comment for moderation. Any authenticated user can
// flag; flagging an already flagged comment is a no-op.
func (s *Service) FlagComment(ctx context.Context, input FlagCommentInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.comments.SetFlagged(ctx, input.CommentID, true); err != nil {
		return fmt.Errorf("flag comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment flagged",
		slog.String("user_id", userID.String()),
		slog.String("comment_id", input.CommentID.String()),
	)

	return nil
}
