package readstore

import (
	"context"
	"time"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	sqlc "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/sqlc/generated"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/pgconv"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ActivityLogViewQueries interface {
	ListActivityLogs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActivityLogsParams) ([]sqlc.ListActivityLogsRow, error)
}

type ActivityLogReadStore struct {
	queries ActivityLogViewQueries
	db      sqlc.DBTX
}

func NewActivityLogReadStore(queries *sqlc.Queries, db sqlc.DBTX) *ActivityLogReadStore {
	return &ActivityLogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ActivityLogReadStore) FindPage(ctx context.Context, afterCreatedAt *time.Time, afterID uuid.UUID, limit int32) ([]*queries.ActivityLogView, error) {
	params := sqlc.ListActivityLogsParams{
		Limit: int64(limit),
	}
	if afterCreatedAt != nil {
		params.AfterCreated = pgconv.TimeToPgtype(*afterCreatedAt)
		params.AfterID = pgtype.UUID{Bytes: afterID, Valid: true}
	}

	rows, err := r.queries.ListActivityLogs(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list activity logs", err)
	}

	result := make([]*queries.ActivityLogView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ActivityLogView{
			ID:         row.ID,
			ActorID:    pgconv.UUIDPtrFromPgtype(row.ActorID),
			ActorName:  pgconv.StringPtrFromPgtype(row.ActorName),
			Action:     row.Action,
			EntityType: row.EntityType,
			EntityID:   pgconv.UUIDPtrFromPgtype(row.EntityID),
			Detail:     row.Detail,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}
