package response

import (
	"time"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/commands"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID              uuid.UUID  `json:"id"`
	RoomID          uuid.UUID  `json:"room_id"`
	RoomName        string     `json:"room_name"`
	RoomNumber      string     `json:"room_number"`
	UserID          *uuid.UUID `json:"user_id,omitempty"`
	GuestName       string     `json:"guest_name"`
	GuestEmail      string     `json:"guest_email"`
	GuestPhone      string     `json:"guest_phone"`
	CheckIn         time.Time  `json:"check_in"`
	CheckOut        time.Time  `json:"check_out"`
	Status          string     `json:"status"`
	TotalPrice      int64      `json:"total_price"`
	SpecialRequests *string    `json:"special_requests,omitempty"`
	EmailSent       bool       `json:"email_sent"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings   []*BookingResponse `json:"bookings"`
	NextCursor *string            `json:"next_cursor,omitempty"`
}

type CreateBookingResponse struct {
	ID         uuid.UUID `json:"id"`
	Status     string    `json:"status"`
	TotalPrice int64     `json:"total_price"`
}

// BookingStatusResponse reports a lifecycle transition. EmailSent stays
// false when the confirmation mail could not be enqueued.
type BookingStatusResponse struct {
	Status    string `json:"status"`
	EmailSent bool   `json:"email_sent"`
}

func FromUpdateStatusResult(r *commands.UpdateStatusResult) *BookingStatusResponse {
	return &BookingStatusResponse{Status: r.Status, EmailSent: r.EmailSent}
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              v.ID,
		RoomID:          v.RoomID,
		RoomName:        v.RoomName,
		RoomNumber:      v.RoomNumber,
		UserID:          v.UserID,
		GuestName:       v.GuestName,
		GuestEmail:      v.GuestEmail,
		GuestPhone:      v.GuestPhone,
		CheckIn:         v.CheckIn,
		CheckOut:        v.CheckOut,
		Status:          v.Status,
		TotalPrice:      v.TotalPrice,
		SpecialRequests: v.SpecialRequests,
		EmailSent:       v.EmailSent,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromBookingViews(views []*queries.BookingView, next *queries.Cursor) *BookingListResponse {
	bookings := make([]*BookingResponse, 0, len(views))
	for _, v := range views {
		bookings = append(bookings, FromBookingView(v))
	}
	resp := &BookingListResponse{Bookings: bookings}
	if next != nil && next.After != "" {
		resp.NextCursor = &next.After
	}
	return resp
}
