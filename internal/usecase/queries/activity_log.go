package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ActivityLogQueries interface {
	List(ctx context.Context, after *Cursor, limit int) ([]*ActivityLogView, *Cursor, error)
}

type ActivityLogViewRepo interface {
	FindPage(ctx context.Context, afterCreatedAt *time.Time, afterID uuid.UUID, limit int32) ([]*ActivityLogView, error)
}

type activityLogQueriesImpl struct {
	repo ActivityLogViewRepo
}

func NewActivityLogQueries(repo ActivityLogViewRepo) ActivityLogQueries {
	return &activityLogQueriesImpl{repo: repo}
}

func (q *activityLogQueriesImpl) List(ctx context.Context, after *Cursor, limit int) ([]*ActivityLogView, *Cursor, error) {
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

	rows, err := q.repo.FindPage(ctx, afterCreatedAt, afterID, int32(limit))
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
