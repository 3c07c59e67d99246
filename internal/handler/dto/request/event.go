package request

import (
	"time"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/event"
)

type CreateEventRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	ImageData   string     `json:"image_data,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	EventDate   *time.Time `json:"event_date,omitempty"`
}

func (r *CreateEventRequest) ToDomain(imageURL string) (*event.Event, error) {
	return event.NewEvent(r.Title, r.Description, imageURL, r.EventDate)
}

type UpdateEventRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	ImageData   string     `json:"image_data,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	EventDate   *time.Time `json:"event_date,omitempty"`
}
