package queries

import (
	"context"

	"github.com/google/uuid"
)

type EventQueries interface {
	List(ctx context.Context) ([]*EventView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*EventView, error)
}

type EventViewRepo interface {
	FindAll(ctx context.Context) ([]*EventView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*EventView, error)
}

type eventQueriesImpl struct {
	repo EventViewRepo
}

func NewEventQueries(repo EventViewRepo) EventQueries {
	return &eventQueriesImpl{repo: repo}
}

func (q *eventQueriesImpl) List(ctx context.Context) ([]*EventView, error) {
	return q.repo.FindAll(ctx)
}

func (q *eventQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EventView, error) {
	return q.repo.FindByID(ctx, id)
}
