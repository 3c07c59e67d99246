package readstore

import (
	"context"
	"time"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	sqlc "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/sqlc/generated"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/pgconv"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Booking, error)
	ListBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.ListBookingsRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries *sqlc.Queries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return &queries.BookingView{
		ID:              row.ID,
		RoomID:          row.RoomID,
		UserID:          pgconv.UUIDPtrFromPgtype(row.UserID),
		GuestName:       row.GuestName,
		GuestEmail:      row.GuestEmail,
		GuestPhone:      row.GuestPhone,
		CheckIn:         pgconv.DateFromPgtype(row.CheckIn),
		CheckOut:        pgconv.DateFromPgtype(row.CheckOut),
		Status:          row.Status,
		TotalPrice:      row.TotalPrice,
		SpecialRequests: pgconv.StringPtrFromPgtype(row.SpecialRequests),
		EmailSent:       row.EmailSent,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *BookingReadStore) FindPage(ctx context.Context, status string, afterCreatedAt *time.Time, afterID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	params := sqlc.ListBookingsParams{
		Status: status,
		Limit:  int64(limit),
	}
	if afterCreatedAt != nil {
		params.AfterCreated = pgconv.TimeToPgtype(*afterCreatedAt)
		params.AfterID = pgtype.UUID{Bytes: afterID, Valid: true}
	}

	rows, err := r.queries.ListBookings(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = rowToBookingView(row)
	}
	return result, nil
}

func rowToBookingView(row sqlc.ListBookingsRow) *queries.BookingView {
	return &queries.BookingView{
		ID:              row.ID,
		RoomID:          row.RoomID,
		RoomName:        row.RoomName,
		RoomNumber:      row.RoomNumber,
		UserID:          pgconv.UUIDPtrFromPgtype(row.UserID),
		GuestName:       row.GuestName,
		GuestEmail:      row.GuestEmail,
		GuestPhone:      row.GuestPhone,
		CheckIn:         pgconv.DateFromPgtype(row.CheckIn),
		CheckOut:        pgconv.DateFromPgtype(row.CheckOut),
		Status:          row.Status,
		TotalPrice:      row.TotalPrice,
		SpecialRequests: pgconv.StringPtrFromPgtype(row.SpecialRequests),
		EmailSent:       row.EmailSent,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
