package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("room name cannot be empty")
	ErrEmptyRoomNumber  = errors.New("room number cannot be empty")
	ErrNonPositivePrice = errors.New("nightly price must be positive")
	ErrInvalidCapacity  = errors.New("capacity must be at least 1")
	ErrInvalidStatus    = errors.New("invalid room status")
	ErrInvalidRoomType  = errors.New("invalid room type")
	ErrInvalidWindow    = errors.New("taken-until must not precede taken-from")
)

type Room struct {
	id            uuid.UUID
	name          string
	roomNumber    string
	pricePerNight int64
	capacity      int32
	roomType      RoomType
	description   string
	imageURL      string
	features      []string
	status        Status
	takenFrom     *time.Time
	takenUntil    *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewRoom(
	name, roomNumber string,
	pricePerNight int64,
	capacity int32,
	roomType RoomType,
	description, imageURL string,
	features []string,
) (*Room, error) {
	name = strings.TrimSpace(name)
	roomNumber = strings.TrimSpace(roomNumber)

	if name == "" {
		return nil, ErrEmptyName
	}
	if roomNumber == "" {
		return nil, ErrEmptyRoomNumber
	}
	if pricePerNight <= 0 {
		return nil, ErrNonPositivePrice
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if !roomType.IsValid() {
		return nil, ErrInvalidRoomType
	}

	return &Room{
		id:            uuid.New(),
		name:          name,
		roomNumber:    roomNumber,
		pricePerNight: pricePerNight,
		capacity:      capacity,
		roomType:      roomType,
		description:   strings.TrimSpace(description),
		imageURL:      imageURL,
		features:      features,
		status:        StatusAvailable,
	}, nil
}

func ReconstructRoom(
	id uuid.UUID,
	name, roomNumber string,
	pricePerNight int64,
	capacity int32,
	roomType RoomType,
	description, imageURL string,
	features []string,
	status Status,
	takenFrom, takenUntil *time.Time,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:            id,
		name:          name,
		roomNumber:    roomNumber,
		pricePerNight: pricePerNight,
		capacity:      capacity,
		roomType:      roomType,
		description:   description,
		imageURL:      imageURL,
		features:      features,
		status:        status,
		takenFrom:     takenFrom,
		takenUntil:    takenUntil,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// MarkTaken flips the manual status flag. The optional window records the
// span an admin expects the room to stay occupied; it is informational and
// independent of booking rows.
func (r *Room) MarkTaken(from, until *time.Time) error {
	if from != nil && until != nil && until.Before(*from) {
		return ErrInvalidWindow
	}
	r.status = StatusTaken
	r.takenFrom = from
	r.takenUntil = until
	return nil
}

func (r *Room) MarkAvailable() {
	r.status = StatusAvailable
	r.takenFrom = nil
	r.takenUntil = nil
}

func (r *Room) IsAvailable() bool {
	return r.status == StatusAvailable
}

func (r *Room) ID() uuid.UUID          { return r.id }
func (r *Room) Name() string           { return r.name }
func (r *Room) RoomNumber() string     { return r.roomNumber }
func (r *Room) PricePerNight() int64   { return r.pricePerNight }
func (r *Room) Capacity() int32        { return r.capacity }
func (r *Room) Type() RoomType         { return r.roomType }
func (r *Room) Description() string    { return r.description }
func (r *Room) ImageURL() string       { return r.imageURL }
func (r *Room) Features() []string     { return r.features }
func (r *Room) Status() Status         { return r.status }
func (r *Room) TakenFrom() *time.Time  { return r.takenFrom }
func (r *Room) TakenUntil() *time.Time { return r.takenUntil }
func (r *Room) CreatedAt() time.Time   { return r.createdAt }
func (r *Room) UpdatedAt() time.Time   { return r.updatedAt }
