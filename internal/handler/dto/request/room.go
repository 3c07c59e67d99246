package request

import (
	"time"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/room"
)

type CreateRoomRequest struct {
	Name          string   `json:"name" binding:"required"`
	RoomNumber    string   `json:"room_number" binding:"required"`
	PricePerNight int64    `json:"price_per_night" binding:"required,gt=0"`
	Capacity      int32    `json:"capacity" binding:"required,gte=1"`
	RoomType      string   `json:"room_type" binding:"required,oneof=room suite"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"image_url"`
	Features      []string `json:"features"`
}

func (r *CreateRoomRequest) ToDomain() (*room.Room, error) {
	roomType, err := room.NewRoomType(r.RoomType)
	if err != nil {
		return nil, err
	}
	return room.NewRoom(
		r.Name,
		r.RoomNumber,
		r.PricePerNight,
		r.Capacity,
		roomType,
		r.Description,
		r.ImageURL,
		r.Features,
	)
}

type UpdateRoomRequest struct {
	Name          string   `json:"name" binding:"required"`
	RoomNumber    string   `json:"room_number" binding:"required"`
	PricePerNight int64    `json:"price_per_night" binding:"required,gt=0"`
	Capacity      int32    `json:"capacity" binding:"required,gte=1"`
	RoomType      string   `json:"room_type" binding:"required,oneof=room suite"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"image_url"`
	Features      []string `json:"features"`
}

type SetRoomStatusRequest struct {
	Status     string     `json:"status" binding:"required,oneof=available taken"`
	TakenFrom  *time.Time `json:"taken_from,omitempty"`
	TakenUntil *time.Time `json:"taken_until,omitempty"`
}

type RoomListQuery struct {
	OnlyAvailable bool   `form:"available"`
	RoomType      string `form:"room_type" binding:"omitempty,oneof=room suite"`
	MinCapacity   int32  `form:"min_capacity" binding:"omitempty,gte=1"`
}
