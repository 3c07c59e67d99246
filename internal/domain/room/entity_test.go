//go:build unit

package room_test

import (
	"testing"
	"time"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/room"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.RoomBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewRoomBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestRoom(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Deluxe Suite", actual.Name())
		assert.Equal(t, room.StatusAvailable, actual.Status())
		assert.True(t, actual.IsAvailable())
		assert.Nil(t, actual.TakenFrom())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.RoomBuilder) { b.Name = "  " },
				errIs:  room.ErrEmptyName,
			},
			{
				name:   "empty room number",
				mutate: func(b *builder.RoomBuilder) { b.RoomNumber = "" },
				errIs:  room.ErrEmptyRoomNumber,
			},
			{
				name:   "zero price",
				mutate: func(b *builder.RoomBuilder) { b.PricePerNight = 0 },
				errIs:  room.ErrNonPositivePrice,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.RoomBuilder) { b.PricePerNight = -100 },
				errIs:  room.ErrNonPositivePrice,
			},
			{
				name:   "zero capacity",
				mutate: func(b *builder.RoomBuilder) { b.Capacity = 0 },
				errIs:  room.ErrInvalidCapacity,
			},
			{
				name:   "unknown room type",
				mutate: func(b *builder.RoomBuilder) { b.RoomType = "penthouse" },
				errIs:  room.ErrInvalidRoomType,
			},
			{
				name:   "plain room type",
				mutate: func(b *builder.RoomBuilder) { b.RoomType = "room" },
			},
		})
	})
}

func TestMarkTaken(t *testing.T) {
	newRoom := func(t *testing.T) *room.Room {
		t.Helper()
		rm, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		return rm
	}

	t.Run("without window", func(t *testing.T) {
		rm := newRoom(t)
		require.NoError(t, rm.MarkTaken(nil, nil))
		assert.Equal(t, room.StatusTaken, rm.Status())
		assert.False(t, rm.IsAvailable())
	})

	t.Run("with valid window", func(t *testing.T) {
		rm := newRoom(t)
		from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		until := from.AddDate(0, 0, 5)
		require.NoError(t, rm.MarkTaken(&from, &until))
		assert.Equal(t, &from, rm.TakenFrom())
		assert.Equal(t, &until, rm.TakenUntil())
	})

	t.Run("window end before start", func(t *testing.T) {
		rm := newRoom(t)
		from := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
		until := from.AddDate(0, 0, -1)
		err := rm.MarkTaken(&from, &until)
		require.ErrorIs(t, err, room.ErrInvalidWindow)
		assert.Equal(t, room.StatusAvailable, rm.Status())
	})

	t.Run("mark available clears window", func(t *testing.T) {
		rm := newRoom(t)
		from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, rm.MarkTaken(&from, nil))

		rm.MarkAvailable()
		assert.Equal(t, room.StatusAvailable, rm.Status())
		assert.Nil(t, rm.TakenFrom())
		assert.Nil(t, rm.TakenUntil())
	})
}

func TestNewStatus(t *testing.T) {
	for _, valid := range []string{"available", "taken"} {
		s, err := room.NewStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, s.String())
	}

	_, err := room.NewStatus("occupied")
	assert.ErrorIs(t, err, room.ErrInvalidStatus)
}
