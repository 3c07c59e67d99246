package readstore

import (
	"context"
	"time"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	sqlc "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/sqlc/generated"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/pgconv"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomViewQueries interface {
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Room, error)
	ListRooms(ctx context.Context, db sqlc.DBTX) ([]sqlc.Room, error)
	IsRoomAvailable(ctx context.Context, db sqlc.DBTX, arg sqlc.IsRoomAvailableParams) (bool, error)
}

type RoomReadStore struct {
	queries RoomViewQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries *sqlc.Queries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) FindAll(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListRooms(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}

	result := make([]*queries.RoomView, len(rows))
	for i, row := range rows {
		result[i] = rowToRoomView(row)
	}
	return result, nil
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return rowToRoomView(row), nil
}

func (r *RoomReadStore) IsAvailable(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	available, err := r.queries.IsRoomAvailable(ctx, r.db, sqlc.IsRoomAvailableParams{
		ID:       roomID,
		CheckIn:  pgconv.DateToPgtype(checkIn),
		CheckOut: pgconv.DateToPgtype(checkOut),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return false, infra.WrapRepoErr("failed to check room availability", err)
	}
	return available, nil
}

func rowToRoomView(row sqlc.Room) *queries.RoomView {
	return &queries.RoomView{
		ID:            row.ID,
		Name:          row.Name,
		RoomNumber:    row.RoomNumber,
		PricePerNight: row.PricePerNight,
		Capacity:      row.Capacity,
		RoomType:      row.RoomType,
		Description:   row.Description,
		ImageURL:      row.ImageUrl,
		Features:      row.Features,
		Status:        row.Status,
		TakenFrom:     pgconv.DatePtrFromPgtype(row.TakenFrom),
		TakenUntil:    pgconv.DatePtrFromPgtype(row.TakenUntil),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
