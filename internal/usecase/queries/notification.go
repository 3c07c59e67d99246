package queries

import (
	"context"

	"github.com/google/uuid"
)

type NotificationQueries interface {
	List(ctx context.Context, limit int) ([]*NotificationView, error)
	UnseenCounts(ctx context.Context, userID uuid.UUID) (*UnseenCountsView, error)
}

type NotificationViewRepo interface {
	FindLatest(ctx context.Context, limit int32) ([]*NotificationView, error)
	CountUnseen(ctx context.Context, userID uuid.UUID) (map[string]int64, error)
}

type notificationQueriesImpl struct {
	repo NotificationViewRepo
}

func NewNotificationQueries(repo NotificationViewRepo) NotificationQueries {
	return &notificationQueriesImpl{repo: repo}
}

func (q *notificationQueriesImpl) List(ctx context.Context, limit int) ([]*NotificationView, error) {
	return q.repo.FindLatest(ctx, int32(ValidateLimit(limit)))
}

func (q *notificationQueriesImpl) UnseenCounts(ctx context.Context, userID uuid.UUID) (*UnseenCountsView, error) {
	counts, err := q.repo.CountUnseen(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UnseenCountsView{
		Bookings: counts["booking"],
		Reviews:  counts["review"],
		Contacts: counts["contact"],
	}, nil
}
