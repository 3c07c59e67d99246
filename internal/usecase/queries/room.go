package queries

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

// RoomFilter mirrors the public room listing controls: availability toggle,
// room type, and minimum guest capacity. Zero values mean "no constraint".
type RoomFilter struct {
	OnlyAvailable bool
	RoomType      string
	MinCapacity   int32
}

type RoomQueries interface {
	List(ctx context.Context, filter RoomFilter) ([]*RoomView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut *time.Time) (bool, error)
}

type RoomViewRepo interface {
	FindAll(ctx context.Context) ([]*RoomView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	IsAvailable(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error)
}

type roomQueriesImpl struct {
	repo RoomViewRepo
}

func NewRoomQueries(repo RoomViewRepo) RoomQueries {
	return &roomQueriesImpl{repo: repo}
}

func (q *roomQueriesImpl) List(ctx context.Context, filter RoomFilter) ([]*RoomView, error) {
	rooms, err := q.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterAndSortRooms(rooms, filter), nil
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	return q.repo.FindByID(ctx, id)
}

// CheckAvailability consults the overlap query when both dates are given.
// Without a complete date pair only the static status flag is meaningful.
func (q *roomQueriesImpl) CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut *time.Time) (bool, error) {
	if checkIn == nil || checkOut == nil {
		rm, err := q.repo.FindByID(ctx, roomID)
		if err != nil {
			return false, err
		}
		return rm.Status == "available", nil
	}
	return q.repo.IsAvailable(ctx, roomID, *checkIn, *checkOut)
}

// FilterAndSortRooms is a pure function: it never mutates the input slice.
// Available rooms come before taken rooms; price ascends within each group.
func FilterAndSortRooms(rooms []*RoomView, filter RoomFilter) []*RoomView {
	result := make([]*RoomView, 0, len(rooms))
	for _, rm := range rooms {
		if filter.OnlyAvailable && rm.Status != "available" {
			continue
		}
		if filter.RoomType != "" && rm.RoomType != filter.RoomType {
			continue
		}
		if filter.MinCapacity > 0 && rm.Capacity < filter.MinCapacity {
			continue
		}
		result = append(result, rm)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Status != result[j].Status {
			return result[i].Status == "available"
		}
		return result[i].PricePerNight < result[j].PricePerNight
	})

	return result
}
