package project

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/buildhub-dev/buildhub-backend/internal/domain"
)

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	ListByIdeaIDFunc  func(ctx context.Context, ideaID uuid.UUID) ([]domain.ProjectLink, error)
	GetByIDFunc       func(ctx context.Context, linkID uuid.UUID) (*domain.ProjectLink, error)
	CountByIdeaIDFunc func(ctx context.Context, ideaID uuid.UUID) (int, error)
	CreateFunc        func(ctx context.Context, link *domain.ProjectLink) (*domain.ProjectLink, error)
	UpdateFunc        func(ctx context.Context, link *domain.ProjectLink) (*domain.ProjectLink, error)
	DeleteFunc        func(ctx context.Context, linkID uuid.UUID) error
}

func (mock *projectRepoMock) ListByIdeaID(ctx context.Context, ideaID uuid.UUID) ([]domain.ProjectLink, error) {
	if mock.ListByIdeaIDFunc == nil {
		panic("projectRepoMock.ListByIdeaIDFunc: method is nil but was just called")
	}
	return mock.ListByIdeaIDFunc(ctx, ideaID)
}

func (mock *projectRepoMock) GetByID(ctx context.Context, linkID uuid.UUID) (*domain.ProjectLink, error) {
	if mock.GetByIDFunc == nil {
		panic("projectRepoMock.GetByIDFunc: method is nil but was just called")
	}
	return mock.GetByIDFunc(ctx, linkID)
}

func (mock *projectRepoMock) CountByIdeaID(ctx context.Context, ideaID uuid.UUID) (int, error) {
	if mock.CountByIdeaIDFunc == nil {
		panic("projectRepoMock.CountByIdeaIDFunc: method is nil but was just called")
	}
	return mock.CountByIdeaIDFunc(ctx, ideaID)
}

func (mock *projectRepoMock) Create(ctx context.Context, link *domain.ProjectLink) (*domain.ProjectLink, error) {
	if mock.CreateFunc == nil {
		panic("projectRepoMock.CreateFunc: method is nil but was just called")
	}
	return mock.CreateFunc(ctx, link)
}

func (mock *projectRepoMock) Update(ctx context.Context, link *domain.ProjectLink) (*domain.ProjectLink, error) {
	if mock.UpdateFunc == nil {
		panic("projectRepoMock.UpdateFunc: method is nil but was just called")
	}
	return mock.UpdateFunc(ctx, link)
}

func (mock *projectRepoMock) Delete(ctx context.Context, linkID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("projectRepoMock.DeleteFunc: method is nil but was just called")
	}
	return mock.DeleteFunc(ctx, linkID)
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

var _ projectCounter = &projectCounterMock{}

type projectCounterMock struct {
	ProjectAddedFunc func(ctx context.Context, ideaID uuid.UUID) (int, bool)

	calls struct {
		ProjectAdded   []struct{ IdeaID uuid.UUID }
		ProjectRemoved []struct{ IdeaID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *projectCounterMock) ProjectAdded(ctx context.Context, ideaID uuid.UUID) (int, bool) {
	if mock.ProjectAddedFunc == nil {
		panic("projectCounterMock.ProjectAddedFunc: method is nil but was just called")
	}
	mock.lock.Lock()
	mock.calls.ProjectAdded = append(mock.calls.ProjectAdded, struct{ IdeaID uuid.UUID }{IdeaID: ideaID})
	mock.lock.Unlock()
	return mock.ProjectAddedFunc(ctx, ideaID)
}

func (mock *projectCounterMock) ProjectAddedCalls() []struct{ IdeaID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ProjectAdded
}

func (mock *projectCounterMock) ProjectRemoved(ctx context.Context, ideaID uuid.UUID) {
	mock.lock.Lock()
	mock.calls.ProjectRemoved = append(mock.calls.ProjectRemoved, struct{ IdeaID uuid.UUID }{IdeaID: ideaID})
	mock.lock.Unlock()
}

func (mock *projectCounterMock) ProjectRemovedCalls() []struct{ IdeaID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ProjectRemoved
}
