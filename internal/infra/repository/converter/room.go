package converter

import (
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/room"
	sqlc "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/sqlc/generated"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/pgconv"
)

func RoomToCreateParams(r *room.Room) sqlc.CreateRoomParams {
	return sqlc.CreateRoomParams{
		ID:            r.ID(),
		Name:          r.Name(),
		RoomNumber:    r.RoomNumber(),
		PricePerNight: r.PricePerNight(),
		Capacity:      r.Capacity(),
		RoomType:      r.Type().String(),
		Description:   r.Description(),
		ImageUrl:      r.ImageURL(),
		Features:      r.Features(),
		Status:        r.Status().String(),
		TakenFrom:     pgconv.DatePtrToPgtype(r.TakenFrom()),
		TakenUntil:    pgconv.DatePtrToPgtype(r.TakenUntil()),
	}
}

func RoomToUpdateParams(r *room.Room) sqlc.UpdateRoomParams {
	return sqlc.UpdateRoomParams{
		ID:            r.ID(),
		Name:          r.Name(),
		RoomNumber:    r.RoomNumber(),
		PricePerNight: r.PricePerNight(),
		Capacity:      r.Capacity(),
		RoomType:      r.Type().String(),
		Description:   r.Description(),
		ImageUrl:      r.ImageURL(),
		Features:      r.Features(),
	}
}

func RoomToStatusParams(r *room.Room) sqlc.UpdateRoomStatusParams {
	return sqlc.UpdateRoomStatusParams{
		ID:         r.ID(),
		Status:     r.Status().String(),
		TakenFrom:  pgconv.DatePtrToPgtype(r.TakenFrom()),
		TakenUntil: pgconv.DatePtrToPgtype(r.TakenUntil()),
	}
}
