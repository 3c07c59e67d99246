package event

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle    = errors.New("event title cannot be empty")
	ErrEmptyImageURL = errors.New("event image URL cannot be empty")
)

// Event is a gallery entry: a dated photo with copy shown on the public site.
type Event struct {
	id          uuid.UUID
	title       string
	description string
	imageURL    string
	eventDate   *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewEvent(title, description, imageURL string, eventDate *time.Time) (*Event, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if strings.TrimSpace(imageURL) == "" {
		return nil, ErrEmptyImageURL
	}

	return &Event{
		id:          uuid.New(),
		title:       title,
		description: strings.TrimSpace(description),
		imageURL:    imageURL,
		eventDate:   eventDate,
	}, nil
}

func ReconstructEvent(id uuid.UUID, title, description, imageURL string, eventDate *time.Time, createdAt, updatedAt time.Time) *Event {
	return &Event{
		id:          id,
		title:       title,
		description: description,
		imageURL:    imageURL,
		eventDate:   eventDate,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (e *Event) ID() uuid.UUID         { return e.id }
func (e *Event) Title() string         { return e.title }
func (e *Event) Description() string   { return e.description }
func (e *Event) ImageURL() string      { return e.imageURL }
func (e *Event) EventDate() *time.Time { return e.eventDate }
func (e *Event) CreatedAt() time.Time  { return e.createdAt }
func (e *Event) UpdatedAt() time.Time  { return e.updatedAt }
