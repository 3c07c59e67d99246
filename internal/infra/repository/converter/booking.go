package converter

import (
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/booking"
	sqlc "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/sqlc/generated"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	params := sqlc.CreateBookingParams{
		ID:         b.ID(),
		UserID:     pgconv.UUIDPtrToPgtype(b.UserID()),
		RoomID:     b.RoomID(),
		CheckIn:    pgconv.DateToPgtype(b.Stay().CheckIn()),
		CheckOut:   pgconv.DateToPgtype(b.Stay().CheckOut()),
		Status:     b.Status().String(),
		TotalPrice: b.TotalPrice().Amount(),
		GuestName:  b.Guest().Name(),
		GuestEmail: b.Guest().Email(),
		GuestPhone: b.Guest().Phone(),
	}

	if !b.SpecialRequests().IsEmpty() {
		params.SpecialRequests = pgtype.Text{String: b.SpecialRequests().String(), Valid: true}
	}

	return params
}
