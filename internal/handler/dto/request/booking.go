package request

import (
	"time"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID          uuid.UUID `json:"room_id" binding:"required"`
	CheckIn         time.Time `json:"check_in" binding:"required"`
	CheckOut        time.Time `json:"check_out" binding:"required"`
	GuestName       string    `json:"guest_name" binding:"required"`
	GuestEmail      string    `json:"guest_email" binding:"required,email"`
	GuestPhone      string    `json:"guest_phone"`
	SpecialRequests string    `json:"special_requests"`
}

func (r *CreateBookingRequest) ToDomain(spec booking.RoomSpec, userID *uuid.UUID, now time.Time) (*booking.Booking, error) {
	stay, err := booking.NewStayRange(r.CheckIn, r.CheckOut, now)
	if err != nil {
		return nil, err
	}

	guest, err := booking.NewGuestContact(r.GuestName, r.GuestEmail, r.GuestPhone)
	if err != nil {
		return nil, err
	}

	return booking.NewBooking(spec, userID, stay, guest, booking.NewSpecialRequests(r.SpecialRequests))
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed checked_in checked_out cancelled"`
}

type BookingListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed checked_in checked_out cancelled"`
	After  string `form:"after"`
	Limit  int    `form:"limit" binding:"omitempty,gte=1,lte=200"`
}

type AvailabilityQuery struct {
	CheckIn  *time.Time `form:"check_in" time_format:"2006-01-02"`
	CheckOut *time.Time `form:"check_out" time_format:"2006-01-02"`
}
