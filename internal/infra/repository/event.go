package repository

import (
	"context"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/event"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/repository/converter"
	sqlc "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type EventWriteQueries interface {
	CreateEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEventParams) (uuid.UUID, error)
	UpdateEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateEventParams) (int64, error)
	DeleteEvent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type EventRepository struct {
	queries EventWriteQueries
}

func NewEventRepository(queries EventWriteQueries) *EventRepository {
	return &EventRepository{queries: queries}
}

func (r *EventRepository) Create(ctx context.Context, tx sqlc.DBTX, ev *event.Event) (uuid.UUID, error) {
	id, err := r.queries.CreateEvent(ctx, tx, converter.EventToCreateParams(ev))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create event", err)
	}
	return id, nil
}

func (r *EventRepository) Update(ctx context.Context, tx sqlc.DBTX, ev *event.Event) error {
	affected, err := r.queries.UpdateEvent(ctx, tx, converter.EventToUpdateParams(ev))
	if err != nil {
		return infra.WrapRepoErr("failed to update event", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, tx sqlc.DBTX, eventID uuid.UUID) error {
	affected, err := r.queries.DeleteEvent(ctx, tx, eventID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete event", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}
	return nil
}
