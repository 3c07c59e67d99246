package readstore

import (
	"context"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	sqlc "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/sqlc/generated"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/pgconv"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventViewQueries interface {
	ListEvents(ctx context.Context, db sqlc.DBTX) ([]sqlc.Event, error)
	GetEventByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Event, error)
}

type EventReadStore struct {
	queries EventViewQueries
	db      sqlc.DBTX
}

func NewEventReadStore(queries *sqlc.Queries, db sqlc.DBTX) *EventReadStore {
	return &EventReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *EventReadStore) FindAll(ctx context.Context) ([]*queries.EventView, error) {
	rows, err := r.queries.ListEvents(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list events", err)
	}

	result := make([]*queries.EventView, len(rows))
	for i, row := range rows {
		result[i] = rowToEventView(row)
	}
	return result, nil
}

func (r *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	row, err := r.queries.GetEventByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event by ID", err)
	}
	return rowToEventView(row), nil
}

func rowToEventView(row sqlc.Event) *queries.EventView {
	return &queries.EventView{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		ImageURL:    row.ImageUrl,
		EventDate:   pgconv.DatePtrFromPgtype(row.EventDate),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
