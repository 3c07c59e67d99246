package repository

import (
	"context"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/booking"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/repository/converter"
	sqlc "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
	UpdateBookingEmailSent(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingEmailSentParams) (int64, error)
	DeleteBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, bk *booking.Booking) (uuid.UUID, error) {
	id, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(bk))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, status booking.Status) error {
	affected, err := r.queries.UpdateBookingStatus(ctx, tx, sqlc.UpdateBookingStatusParams{
		ID:     bookingID,
		Status: status.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) UpdateEmailSent(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, sent bool) error {
	affected, err := r.queries.UpdateBookingEmailSent(ctx, tx, sqlc.UpdateBookingEmailSentParams{
		ID:        bookingID,
		EmailSent: sent,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking email flag", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) error {
	affected, err := r.queries.DeleteBooking(ctx, tx, bookingID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
