package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/buildhub-dev/buildhub-backend/internal/adapter/postgres/idea"
	"github.com/buildhub-dev/buildhub-backend/internal/domain"
)

var _ ideaRepo = &ideaRepoMock{}

type ideaRepoMock struct {
	GetByIDFunc func(ctx context.Context, ideaID uuid.UUID) (*domain.Idea, error)
	ListFunc    func(ctx context.Context, f idea.Filter) ([]domain.Idea, int, error)

	calls struct {
		List []struct {
			Filter idea.Filter
		}
	}
	lock sync.RWMutex
}

func (mock *ideaRepoMock) GetByID(ctx context.Context, ideaID uuid.UUID) (*domain.Idea, error) {
	if mock.GetByIDFunc == nil {
		panic("ideaRepoMock.GetByIDFunc: method is nil but was just called")
	}
	return mock.GetByIDFunc(ctx, ideaID)
}

func (mock *ideaRepoMock) List(ctx context.Context, f idea.Filter) ([]domain.Idea, int, error) {
	if mock.ListFunc == nil {
		panic("ideaRepoMock.ListFunc: method is nil but was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{ Filter idea.Filter }{Filter: f})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *ideaRepoMock) ListCalls() []struct{ Filter idea.Filter } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

var _ viewRecorder = &viewRecorderMock{}

type viewRecorderMock struct {
	RecordViewFunc func(ctx context.Context, ideaID uuid.UUID) (int, error)
}

func (mock *viewRecorderMock) RecordView(ctx context.Context, ideaID uuid.UUID) (int, error) {
	if mock.RecordViewFunc == nil {
		panic("viewRecorderMock.RecordViewFunc: method is nil but was just called")
	}
	return mock.RecordViewFunc(ctx, ideaID)
}
