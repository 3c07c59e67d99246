package response

import (
	"time"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	RoomNumber    string     `json:"room_number"`
	PricePerNight int64      `json:"price_per_night"`
	Capacity      int32      `json:"capacity"`
	RoomType      string     `json:"room_type"`
	Description   string     `json:"description"`
	ImageURL      string     `json:"image_url"`
	Features      []string   `json:"features"`
	Status        string     `json:"status"`
	TakenFrom     *time.Time `json:"taken_from,omitempty"`
	TakenUntil    *time.Time `json:"taken_until,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type RoomListResponse struct {
	Rooms []*RoomResponse `json:"rooms"`
}

type AvailabilityResponse struct {
	RoomID    uuid.UUID `json:"room_id"`
	Available bool      `json:"available"`
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	// View and response share field names; copier keeps them in sync.
	var resp RoomResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromRoomViews(views []*queries.RoomView) *RoomListResponse {
	rooms := make([]*RoomResponse, 0, len(views))
	for _, v := range views {
		rooms = append(rooms, FromRoomView(v))
	}
	return &RoomListResponse{Rooms: rooms}
}
