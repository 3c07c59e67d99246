package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations

type RoomSnapshot struct {
	ID            uuid.UUID
	Name          string
	RoomNumber    string
	PricePerNight int64
	Capacity      int32
	RoomType      string
	Status        string
}

type BookingSnapshot struct {
	ID         uuid.UUID
	RoomID     uuid.UUID
	UserID     *uuid.UUID
	Status     string
	GuestName  string
	GuestEmail string
	CheckIn    time.Time
	CheckOut   time.Time
	TotalPrice int64
	EmailSent  bool
}

type UserSnapshot struct {
	ID       uuid.UUID
	Email    string
	FullName string
	Role     string
}
