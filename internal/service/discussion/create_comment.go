package discussion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/buildhub-dev/buildhub-backend/internal/domain"
	"github.com/buildhub-dev/buildhub-backend/pkg/ctxutil"
)

// CreateComment posts a comment on an idea for the authenticated user.
// With a parent id it creates a reply; the parent must exist on the same
// idea. Only a top-level comment bumps the idea's comment counter.
func (s *Service) CreateComment(ctx context.Context, input CreateCommentInput) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ideas.GetByID(ctx, input.IdeaID); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	if input.ParentCommentID != nil {
		parent, err := s.comments.GetByID(ctx, *input.ParentCommentID)
		if err != nil {
			return nil, fmt.Errorf("create comment: parent: %w", err)
		}
		if parent.IdeaID != input.IdeaID {
			return nil, domain.NewValidationError("parent_comment_id", "parent belongs to a different idea")
		}
	}

	created, err := s.comments.Create(ctx, &domain.Comment{
		IdeaID:          input.IdeaID,
		AuthorID:        userID,
		ParentCommentID: input.ParentCommentID,
		Content:         strings.TrimSpace(input.Content),
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	if created.IsTopLevel() {
		s.counter.CommentAdded(ctx, input.IdeaID)
	}

	s.log.InfoContext(ctx, "comment created",
		slog.String("user_id", userID.String()),
		slog.String("idea_id", input.IdeaID.String()),
		slog.String("comment_id", created.ID.String()),
		slog.Bool("top_level", created.IsTopLevel()),
	)

	return created, nil
}
