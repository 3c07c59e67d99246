package converter

import (
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/event"
	sqlc "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/sqlc/generated"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/pgconv"
)

func EventToCreateParams(e *event.Event) sqlc.CreateEventParams {
	return sqlc.CreateEventParams{
		ID:          e.ID(),
		Title:       e.Title(),
		Description: e.Description(),
		ImageUrl:    e.ImageURL(),
		EventDate:   pgconv.DatePtrToPgtype(e.EventDate()),
	}
}

func EventToUpdateParams(e *event.Event) sqlc.UpdateEventParams {
	return sqlc.UpdateEventParams{
		ID:          e.ID(),
		Title:       e.Title(),
		Description: e.Description(),
		ImageUrl:    e.ImageURL(),
		EventDate:   pgconv.DatePtrToPgtype(e.EventDate()),
	}
}
