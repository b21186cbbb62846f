// Package discussion provides the threaded comment operations attached to
// catalog ideas: listing as a tree, creating top-level comments and replies,
// editing, flagging, and cascading deletion.
package discussion

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/buildhub-dev/buildhub-backend/internal/domain"
	"github.com/buildhub-dev/buildhub-backend/pkg/ctxutil"
)

type commentRepo interface {
	ListByIdeaID(ctx context.Context, ideaID uuid.UUID, limit int) ([]domain.Comment, error)
	GetByID(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error)
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	UpdateContent(ctx context.Context, commentID uuid.UUID, content string) (*domain.Comment, error)
	CountThread(ctx context.Context, commentID uuid.UUID) (total int, topLevel int, err error)
	DeleteThread(ctx context.Context, commentID uuid.UUID) (int, error)
	SetFlagged(ctx context.Context, commentID uuid.UUID, flagged bool) error
}

type ideaRepo interface {
	GetByID(ctx context.Context, ideaID uuid.UUID) (*domain.Idea, error)
}

type userRepo interface {
	GetByIDs(ctx context.Context, userIDs []uuid.UUID) ([]domain.User, error)
}

type commentCounter interface {
	CommentAdded(ctx context.Context, ideaID uuid.UUID)
	CommentsRemoved(ctx context.Context, ideaID uuid.UUID, n int)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides discussion operations.
type Service struct {
	comments commentRepo
	ideas    ideaRepo
	users    userRepo
	counter  commentCounter
	tx       txManager
	log      *slog.Logger

	maxCommentsPerFetch int
}

// NewService creates a new Discussion service.
func NewService(
	log *slog.Logger,
	comments commentRepo,
	ideas ideaRepo,
	users userRepo,
	counter commentCounter,
	tx txManager,
	maxCommentsPerFetch int,
) *Service {
	return &Service{
		comments:            comments,
		ideas:               ideas,
		users:               users,
		counter:             counter,
		tx:                  tx,
		log:                 log.With("service", "discussion"),
		maxCommentsPerFetch: maxCommentsPerFetch,
	}
}

// tierFromCtx derives the caller's tier from the request context.
func tierFromCtx(ctx context.Context) domain.Tier {
	if _, ok := ctxutil.UserIDFromCtx(ctx); ok {
		return domain.TierAuthenticated
	}
	return domain.TierGuest
}

// visibleIdea loads an idea and applies the caller's tier visibility:
// unknown id is NotFound, a hidden idea is Forbidden.
func (s *Service) visibleIdea(ctx context.Context, ideaID uuid.UUID) (*domain.Idea, error) {
	idea, err := s.ideas.GetByID(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	if !idea.VisibleTo(tierFromCtx(ctx)) {
		return nil, domain.ErrForbidden
	}
	return idea, nil
}
