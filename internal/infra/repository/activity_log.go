package repository

import (
	"context"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	sqlc "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/sqlc/generated"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/pgconv"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/shared"

	"github.com/google/uuid"
)

type ActivityLogWriteQueries interface {
	CreateActivityLog(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateActivityLogParams) error
}

type ActivityLogRepository struct {
	queries ActivityLogWriteQueries
}

func NewActivityLogRepository(queries ActivityLogWriteQueries) *ActivityLogRepository {
	return &ActivityLogRepository{queries: queries}
}

func (r *ActivityLogRepository) Record(ctx context.Context, tx sqlc.DBTX, entry shared.ActivityEntry) error {
	err := r.queries.CreateActivityLog(ctx, tx, sqlc.CreateActivityLogParams{
		ID:         uuid.New(),
		ActorID:    pgconv.UUIDPtrToPgtype(entry.ActorID),
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   pgconv.UUIDPtrToPgtype(entry.EntityID),
		Detail:     entry.Detail,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record activity log", err)
	}
	return nil
}
