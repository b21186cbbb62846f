package discussion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/buildhub-dev/buildhub-backend/internal/domain"
	"github.com/buildhub-dev/buildhub-backend/pkg/ctxutil"
)

// UpdateComment edits a comment's content. Author-only.
func (s *Service) UpdateComment(ctx context.Context, input UpdateCommentInput) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.comments.GetByID(ctx, input.CommentID)
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	if existing.AuthorID != userID {
		return nil, fmt.Errorf("comment %s: %w", input.CommentID, domain.ErrForbidden)
	}

	updated, err := s.comments.UpdateContent(ctx, input.CommentID, strings.TrimSpace(input.Content))
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment updated",
		slog.String("user_id", userID.String()),
		slog.String("comment_id", input.CommentID.String()),
	)

	return updated, nil
}
