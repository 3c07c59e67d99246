//go:build unit || e2e

package builder

import (
	"time"

	domroom "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/room"
	reqdto "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/request"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	Name          string
	RoomNumber    string
	PricePerNight int64
	Capacity      int32
	RoomType      string
	Description   string
	ImageURL      string
	Features      []string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewRoomBuilder() *RoomBuilder {
	now := time.Now()
	return &RoomBuilder{
		Name:          "Deluxe Suite",
		RoomNumber:    "101",
		PricePerNight: 20000,
		Capacity:      2,
		RoomType:      "suite",
		Description:   "Spacious suite with ocean view",
		ImageURL:      "https://example.com/rooms/101.jpg",
		Features:      []string{"wifi", "minibar"},
		Status:        "available",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) BuildDomain() (*domroom.Room, error) {
	return domroom.NewRoom(b.Name, b.RoomNumber, b.PricePerNight, b.Capacity,
		domroom.RoomType(b.RoomType), b.Description, b.ImageURL, b.Features)
}

func (b *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		Name:          b.Name,
		RoomNumber:    b.RoomNumber,
		PricePerNight: b.PricePerNight,
		Capacity:      b.Capacity,
		RoomType:      b.RoomType,
		Description:   b.Description,
		ImageURL:      b.ImageURL,
		Features:      b.Features,
	}
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:            uuid.New(),
		Name:          b.Name,
		RoomNumber:    b.RoomNumber,
		PricePerNight: b.PricePerNight,
		Capacity:      b.Capacity,
		RoomType:      b.RoomType,
		Description:   b.Description,
		ImageURL:      b.ImageURL,
		Features:      b.Features,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *RoomBuilder) BuildSnapshot() *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:            uuid.New(),
		Name:          b.Name,
		RoomNumber:    b.RoomNumber,
		PricePerNight: b.PricePerNight,
		Capacity:      b.Capacity,
		RoomType:      b.RoomType,
		Status:        b.Status,
	}
}
