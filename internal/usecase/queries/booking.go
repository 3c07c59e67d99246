package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, status string, after *Cursor, limit int) ([]*BookingView, *Cursor, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindPage(ctx context.Context, status string, afterCreatedAt *time.Time, afterID uuid.UUID, limit int32) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) List(ctx context.Context, status string, after *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var afterCreatedAt *time.Time
	afterID := uuid.Nil
	if after != nil && after.After != "" {
		t, id, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, err
		}
		afterCreatedAt = &t
		afterID = id
	}

	rows, err := q.repo.FindPage(ctx, status, afterCreatedAt, afterID, int32(limit))
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) == limit {
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}

	return rows, next, nil
}
