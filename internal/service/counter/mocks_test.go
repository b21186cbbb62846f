package counter

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ ideaCounterRepo = &ideaCounterRepoMock{}

type ideaCounterRepoMock struct {
	IncrementViewCountFunc func(ctx context.Context, ideaID uuid.UUID) (int, error)
	AdjustCommentCountFunc func(ctx context.Context, ideaID uuid.UUID, delta int) error
	AdjustProjectCountFunc func(ctx context.Context, ideaID uuid.UUID, delta int) (int, error)

	calls struct {
		AdjustCommentCount []struct {
			IdeaID uuid.UUID
			Delta  int
		}
		AdjustProjectCount []struct {
			IdeaID uuid.UUID
			Delta  int
		}
	}
	lock sync.RWMutex
}

func (mock *ideaCounterRepoMock) IncrementViewCount(ctx context.Context, ideaID uuid.UUID) (int, error) {
	if mock.IncrementViewCountFunc == nil {
		panic("ideaCounterRepoMock.IncrementViewCountFunc: method is nil but was just called")
	}
	return mock.IncrementViewCountFunc(ctx, ideaID)
}

func (mock *ideaCounterRepoMock) AdjustCommentCount(ctx context.Context, ideaID uuid.UUID, delta int) error {
	if mock.AdjustCommentCountFunc == nil {
		panic("ideaCounterRepoMock.AdjustCommentCountFunc: method is nil but was just called")
	}
	mock.lock.Lock()
	mock.calls.AdjustCommentCount = append(mock.calls.AdjustCommentCount, struct {
		IdeaID uuid.UUID
		Delta  int
	}{IdeaID: ideaID, Delta: delta})
	mock.lock.Unlock()
	return mock.AdjustCommentCountFunc(ctx, ideaID, delta)
}

func (mock *ideaCounterRepoMock) AdjustCommentCountCalls() []struct {
	IdeaID uuid.UUID
	Delta  int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.AdjustCommentCount
}

func (mock *ideaCounterRepoMock) AdjustProjectCount(ctx context.Context, ideaID uuid.UUID, delta int) (int, error) {
	if mock.AdjustProjectCountFunc == nil {
		panic("ideaCounterRepoMock.AdjustProjectCountFunc: method is nil but was just called")
	}
	mock.lock.Lock()
	mock.calls.AdjustProjectCount = append(mock.calls.AdjustProjectCount, struct {
		IdeaID uuid.UUID
		Delta  int
	}{IdeaID: ideaID, Delta: delta})
	mock.lock.Unlock()
	return mock.AdjustProjectCountFunc(ctx, ideaID, delta)
}

func (mock *ideaCounterRepoMock) AdjustProjectCountCalls() []struct {
	IdeaID uuid.UUID
	Delta  int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.AdjustProjectCount
}
