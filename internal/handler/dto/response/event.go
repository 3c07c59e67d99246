package response

import (
	"time"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type EventResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	EventDate   *time.Time `json:"event_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type EventListResponse struct {
	Events []*EventResponse `json:"events"`
}

func FromEventView(v *queries.EventView) *EventResponse {
	var resp EventResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromEventViews(views []*queries.EventView) *EventListResponse {
	events := make([]*EventResponse, 0, len(views))
	for _, v := range views {
		events = append(events, FromEventView(v))
	}
	return &EventListResponse{Events: events}
}
