package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrNegativePrice     = errors.New("total price cannot be negative")
)

// RoomSpec carries the room fields the booking aggregate needs; the write
// side never loads the full room aggregate for a submission.
type RoomSpec struct {
	ID            uuid.UUID
	PricePerNight int64
}

type Booking struct {
	id              uuid.UUID
	userID          *uuid.UUID
	roomID          uuid.UUID
	stay            StayRange
	status          Status
	totalPrice      Money
	guest           GuestContact
	specialRequests SpecialRequests
	createdAt       time.Time
	updatedAt       time.Time
}

// NewBooking prices the stay at creation time: nightly rate × night count.
// Every new booking starts pending; only explicit admin action moves it on.
func NewBooking(
	room RoomSpec,
	userID *uuid.UUID,
	stay StayRange,
	guest GuestContact,
	specialRequests SpecialRequests,
) (*Booking, error) {
	total := room.PricePerNight * stay.Nights()
	if total < 0 {
		return nil, ErrNegativePrice
	}

	return &Booking{
		id:              uuid.New(),
		userID:          userID,
		roomID:          room.ID,
		stay:            stay,
		status:          StatusPending,
		totalPrice:      NewMoney(total),
		guest:           guest,
		specialRequests: specialRequests,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	userID *uuid.UUID,
	roomID uuid.UUID,
	stay StayRange,
	status Status,
	totalPrice Money,
	guest GuestContact,
	specialRequests SpecialRequests,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		userID:          userID,
		roomID:          roomID,
		stay:            stay,
		status:          status,
		totalPrice:      totalPrice,
		guest:           guest,
		specialRequests: specialRequests,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (b *Booking) TransitionTo(next Status) error {
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) ID() uuid.UUID                    { return b.id }
func (b *Booking) UserID() *uuid.UUID               { return b.userID }
func (b *Booking) RoomID() uuid.UUID                { return b.roomID }
func (b *Booking) Stay() StayRange                  { return b.stay }
func (b *Booking) Status() Status                   { return b.status }
func (b *Booking) TotalPrice() Money                { return b.totalPrice }
func (b *Booking) Guest() GuestContact              { return b.guest }
func (b *Booking) SpecialRequests() SpecialRequests { return b.specialRequests }
func (b *Booking) CreatedAt() time.Time             { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time             { return b.updatedAt }
