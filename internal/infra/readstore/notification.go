package readstore

import (
	"context"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	sqlc "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/sqlc/generated"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/pgconv"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationViewQueries interface {
	ListNotifications(ctx context.Context, db sqlc.DBTX, limit int64) ([]sqlc.AdminNotification, error)
	CountUnseenNotifications(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.CountUnseenNotificationsRow, error)
}

type NotificationReadStore struct {
	queries NotificationViewQueries
	db      sqlc.DBTX
}

func NewNotificationReadStore(queries *sqlc.Queries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationReadStore) FindLatest(ctx context.Context, limit int32) ([]*queries.NotificationView, error) {
	rows, err := r.queries.ListNotifications(ctx, r.db, int64(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}

	result := make([]*queries.NotificationView, len(rows))
	for i, row := range rows {
		result[i] = &queries.NotificationView{
			ID:        row.ID,
			Kind:      row.Kind,
			Summary:   row.Summary,
			EntityID:  pgconv.UUIDPtrFromPgtype(row.EntityID),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *NotificationReadStore) CountUnseen(ctx context.Context, userID uuid.UUID) (map[string]int64, error) {
	rows, err := r.queries.CountUnseenNotifications(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count unseen notifications", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Kind] = row.Count
	}
	return counts, nil
}
