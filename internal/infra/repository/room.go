package repository

import (
	"context"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/room"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/repository/converter"
	sqlc "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RoomWriteQueries interface {
	CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) (uuid.UUID, error)
	UpdateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomParams) (int64, error)
	UpdateRoomStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomStatusParams) (int64, error)
	DeleteRoom(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
}

func NewRoomRepository(queries RoomWriteQueries) *RoomRepository {
	return &RoomRepository{queries: queries}
}

func (r *RoomRepository) Create(ctx context.Context, tx sqlc.DBTX, rm *room.Room) (uuid.UUID, error) {
	id, err := r.queries.CreateRoom(ctx, tx, converter.RoomToCreateParams(rm))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create room", err)
	}
	return id, nil
}

func (r *RoomRepository) Update(ctx context.Context, tx sqlc.DBTX, rm *room.Room) error {
	affected, err := r.queries.UpdateRoom(ctx, tx, converter.RoomToUpdateParams(rm))
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, rm *room.Room) error {
	affected, err := r.queries.UpdateRoomStatus(ctx, tx, converter.RoomToStatusParams(rm))
	if err != nil {
		return infra.WrapRepoErr("failed to update room status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID) error {
	affected, err := r.queries.DeleteRoom(ctx, tx, roomID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}
