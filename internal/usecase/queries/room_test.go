//go:build unit

package queries_test

import (
	"testing"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildRoom(mutate func(*builder.RoomBuilder)) *queries.RoomView {
	b := builder.NewRoomBuilder()
	if mutate != nil {
		mutate(b)
	}
	return b.BuildView()
}

func TestFilterAndSortRooms(t *testing.T) {
	cheapRoom := buildRoom(func(b *builder.RoomBuilder) {
		b.RoomType = "room"
		b.PricePerNight = 10000
		b.Capacity = 2
	})
	expensiveSuite := buildRoom(func(b *builder.RoomBuilder) {
		b.RoomType = "suite"
		b.PricePerNight = 50000
		b.Capacity = 4
	})
	takenRoom := buildRoom(func(b *builder.RoomBuilder) {
		b.RoomType = "room"
		b.PricePerNight = 8000
		b.Status = "taken"
	})
	midSuite := buildRoom(func(b *builder.RoomBuilder) {
		b.RoomType = "suite"
		b.PricePerNight = 30000
		b.Capacity = 3
	})
	all := []*queries.RoomView{expensiveSuite, takenRoom, cheapRoom, midSuite}

	t.Run("no filter sorts available first then price ascending", func(t *testing.T) {
		result := queries.FilterAndSortRooms(all, queries.RoomFilter{})
		require.Len(t, result, 4)
		assert.Equal(t, cheapRoom.ID, result[0].ID)
		assert.Equal(t, midSuite.ID, result[1].ID)
		assert.Equal(t, expensiveSuite.ID, result[2].ID)
		assert.Equal(t, takenRoom.ID, result[3].ID)
	})

	t.Run("only available", func(t *testing.T) {
		result := queries.FilterAndSortRooms(all, queries.RoomFilter{OnlyAvailable: true})
		require.Len(t, result, 3)
		for _, rm := range result {
			assert.Equal(t, "available", rm.Status)
		}
	})

	t.Run("by room type", func(t *testing.T) {
		result := queries.FilterAndSortRooms(all, queries.RoomFilter{RoomType: "suite"})
		require.Len(t, result, 2)
		assert.Equal(t, midSuite.ID, result[0].ID)
		assert.Equal(t, expensiveSuite.ID, result[1].ID)
	})

	t.Run("by minimum capacity", func(t *testing.T) {
		result := queries.FilterAndSortRooms(all, queries.RoomFilter{MinCapacity: 3})
		require.Len(t, result, 2)
		assert.Equal(t, midSuite.ID, result[0].ID)
		assert.Equal(t, expensiveSuite.ID, result[1].ID)
	})

	t.Run("combined filters", func(t *testing.T) {
		result := queries.FilterAndSortRooms(all, queries.RoomFilter{
			OnlyAvailable: true,
			RoomType:      "room",
			MinCapacity:   2,
		})
		require.Len(t, result, 1)
		assert.Equal(t, cheapRoom.ID, result[0].ID)
	})

	t.Run("does not mutate input order", func(t *testing.T) {
		_ = queries.FilterAndSortRooms(all, queries.RoomFilter{})
		assert.Equal(t, expensiveSuite.ID, all[0].ID)
		assert.Equal(t, takenRoom.ID, all[1].ID)
	})

	t.Run("empty input", func(t *testing.T) {
		result := queries.FilterAndSortRooms(nil, queries.RoomFilter{OnlyAvailable: true})
		assert.Empty(t, result)
	})
}
