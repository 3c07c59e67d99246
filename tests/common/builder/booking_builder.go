//go:build unit || e2e

package builder

import (
	"time"

	dombooking "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/booking"
	reqdto "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/request"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	RoomID          uuid.UUID
	RoomName        string
	RoomNumber      string
	PricePerNight   int64
	UserID          *uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	SpecialRequests string
	Status          string
	Now             time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		RoomID:        uuid.New(),
		RoomName:      "Deluxe Suite",
		RoomNumber:    "101",
		PricePerNight: 20000,
		CheckIn:       now.AddDate(0, 0, 7),
		CheckOut:      now.AddDate(0, 0, 9),
		GuestName:     "Ada Obi",
		GuestEmail:    "ada.obi@example.com",
		GuestPhone:    "+2348012345678",
		Status:        "pending",
		Now:           now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	req := b.BuildCreateRequestDTO()
	spec := dombooking.RoomSpec{ID: b.RoomID, PricePerNight: b.PricePerNight}
	return req.ToDomain(spec, b.UserID, b.Now)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:          b.RoomID,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	nights := int64(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
	return &queries.BookingView{
		ID:         uuid.New(),
		RoomID:     b.RoomID,
		RoomName:   b.RoomName,
		RoomNumber: b.RoomNumber,
		UserID:     b.UserID,
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		GuestPhone: b.GuestPhone,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Status:     b.Status,
		TotalPrice: b.PricePerNight * nights,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	nights := int64(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
	return &shared.BookingSnapshot{
		ID:         uuid.New(),
		RoomID:     b.RoomID,
		UserID:     b.UserID,
		Status:     b.Status,
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		TotalPrice: b.PricePerNight * nights,
	}
}
