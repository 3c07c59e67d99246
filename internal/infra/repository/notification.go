package repository

import (
	"context"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	sqlc "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/sqlc/generated"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	CreateNotification(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationParams) (uuid.UUID, error)
	MarkNotificationsSeen(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationsSeenParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) Create(ctx context.Context, tx sqlc.DBTX, kind, summary string, entityID *uuid.UUID) (uuid.UUID, error) {
	id, err := r.queries.CreateNotification(ctx, tx, sqlc.CreateNotificationParams{
		ID:       uuid.New(),
		Kind:     kind,
		Summary:  summary,
		EntityID: pgconv.UUIDPtrToPgtype(entityID),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create notification", err)
	}
	return id, nil
}

func (r *NotificationRepository) MarkSeen(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, kind string) error {
	err := r.queries.MarkNotificationsSeen(ctx, tx, sqlc.MarkNotificationsSeenParams{
		UserID: userID,
		Kind:   kind,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notifications seen", err)
	}
	return nil
}
