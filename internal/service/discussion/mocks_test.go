package discussion

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/buildhub-dev/buildhub-backend/internal/domain"
)

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	ListByIdeaIDFunc  func(ctx context.Context, ideaID uuid.UUID, limit int) ([]domain.Comment, error)
	GetByIDFunc       func(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error)
	CreateFunc        func(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	UpdateContentFunc func(ctx context.Context, commentID uuid.UUID, content string) (*domain.Comment, error)
	CountThreadFunc   func(ctx context.Context, commentID uuid.UUID) (int, int, error)
	DeleteThreadFunc  func(ctx context.Context, commentID uuid.UUID) (int, error)
	SetFlaggedFunc    func(ctx context.Context, commentID uuid.UUID, flagged bool) error
}

func (mock *commentRepoMock) ListByIdeaID(ctx context.Context, ideaID uuid.UUID, limit int) ([]domain.Comment, error) {
	if mock.ListByIdeaIDFunc == nil {
		panic("commentRepoMock.ListByIdeaIDFunc: method is nil but was just called")
	}
	return mock.ListByIdeaIDFunc(ctx, ideaID, limit)
}

func (mock *commentRepoMock) GetByID(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error) {
	if mock.GetByIDFunc == nil {
		panic("commentRepoMock.GetByIDFunc: method is nil but was just called")
	}
	return mock.GetByIDFunc(ctx, commentID)
}

func (mock *commentRepoMock) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but was just called")
	}
	return mock.CreateFunc(ctx, c)
}

func (mock *commentRepoMock) UpdateContent(ctx context.Context, commentID uuid.UUID, content string) (*domain.Comment, error) {
	if mock.UpdateContentFunc == nil {
		panic("commentRepoMock.UpdateContentFunc: method is nil but was just called")
	}
	return mock.UpdateContentFunc(ctx, commentID, content)
}

func (mock *commentRepoMock) CountThread(ctx context.Context, commentID uuid.UUID) (int, int, error) {
	if mock.CountThreadFunc == nil {
		panic("commentRepoMock.CountThreadFunc: method is nil but was just called")
	}
	return mock.CountThreadFunc(ctx, commentID)
}

func (mock *commentRepoMock) DeleteThread(ctx context.Context, commentID uuid.UUID) (int, error) {
	if mock.DeleteThreadFunc == nil {
		panic("commentRepoMock.DeleteThreadFunc: method is nil but was just called")
	}
	return mock.DeleteThreadFunc(ctx, commentID)
}

func (mock *commentRepoMock) SetFlagged(ctx context.Context, commentID uuid.UUID, flagged bool) error {
	if mock.SetFlaggedFunc == nil {
		panic("commentRepoMock.SetFlaggedFunc: method is nil but was just called")
	}
	return mock.SetFlaggedFunc(ctx, commentID, flagged)
}

var _ ideaRepo = &ideaRepoMock{}

type ideaRepoMock struct {
	GetByIDFunc func(ctx context.Context, ideaID uuid.UUID) (*domain.Idea, error)
}

func (mock *ideaRepoMock) GetByID(ctx context.Context, ideaID uuid.UUID) (*domain.Idea, error) {
	if mock.GetByIDFunc == nil {
		panic("ideaRepoMock.GetByIDFunc: method is nil but was just called")
	}
	return mock.GetByIDFunc(ctx, ideaID)
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDsFunc func(ctx context.Context, userIDs []uuid.UUID) ([]domain.User, error)

	calls struct {
		GetByIDs []struct {
			UserIDs []uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) GetByIDs(ctx context.Context, userIDs []uuid.UUID) ([]domain.User, error) {
	if mock.GetByIDsFunc == nil {
		panic("userRepoMock.GetByIDsFunc: method is nil but was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, struct{ UserIDs []uuid.UUID }{UserIDs: userIDs})
	mock.lock.Unlock()
	return mock.GetByIDsFunc(ctx, userIDs)
}

func (mock *userRepoMock) GetByIDsCalls() []struct{ UserIDs []uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByIDs
}

var _ commentCounter = &commentCounterMock{}

type commentCounterMock struct {
	CommentAddedFunc    func(ctx context.Context, ideaID uuid.UUID)
	CommentsRemovedFunc func(ctx context.Context, ideaID uuid.UUID, n int)

	calls struct {
		CommentAdded []struct {
			IdeaID uuid.UUID
		}
		CommentsRemoved []struct {
			IdeaID uuid.UUID
			N      int
		}
	}
	lock sync.RWMutex
}

func (mock *commentCounterMock) CommentAdded(ctx context.Context, ideaID uuid.UUID) {
	mock.lock.Lock()
	mock.calls.CommentAdded = append(mock.calls.CommentAdded, struct{ IdeaID uuid.UUID }{IdeaID: ideaID})
	mock.lock.Unlock()
	if mock.CommentAddedFunc != nil {
		mock.CommentAddedFunc(ctx, ideaID)
	}
}

func (mock *commentCounterMock) CommentAddedCalls() []struct{ IdeaID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CommentAdded
}

func (mock *commentCounterMock) CommentsRemoved(ctx context.Context, ideaID uuid.UUID, n int) {
	mock.lock.Lock()
	mock.calls.CommentsRemoved = append(mock.calls.CommentsRemoved, struct {
		IdeaID uuid.UUID
		N      int
	}{IdeaID: ideaID, N: n})
	mock.lock.Unlock()
	if mock.CommentsRemovedFunc != nil {
		mock.CommentsRemovedFunc(ctx, ideaID, n)
	}
}

func (mock *commentCounterMock) CommentsRemovedCalls() []struct {
	IdeaID uuid.UUID
	N      int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CommentsRemoved
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}
