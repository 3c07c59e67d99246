//go:build unit

package booking_test

import (
	"testing"
	"time"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/booking"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder()
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

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, int64(2), actual.Stay().Nights())
		assert.Equal(t, int64(40000), actual.TotalPrice().Amount())
		assert.Equal(t, "Ada Obi", actual.Guest().Name())
		assert.Nil(t, actual.UserID())
	})

	t.Run("stay range validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "check-out equals check-in",
				mutate: func(b *builder.BookingBuilder) {
					b.CheckOut = b.CheckIn
				},
				errIs: booking.ErrInvalidStayRange,
			},
			{
				name: "check-out before check-in",
				mutate: func(b *builder.BookingBuilder) {
					b.CheckOut = b.CheckIn.AddDate(0, 0, -1)
				},
				errIs: booking.ErrInvalidStayRange,
			},
			{
				name: "check-in before today",
				mutate: func(b *builder.BookingBuilder) {
					b.CheckIn = b.Now.AddDate(0, 0, -1)
				},
				errIs: booking.ErrCheckInPast,
			},
			{
				name: "check-in today is allowed",
				mutate: func(b *builder.BookingBuilder) {
					b.CheckIn = b.Now
					b.CheckOut = b.Now.AddDate(0, 0, 1)
				},
			},
			{
				name: "single night stay",
				mutate: func(b *builder.BookingBuilder) {
					b.CheckOut = b.CheckIn.AddDate(0, 0, 1)
				},
			},
		})
	})

	t.Run("guest contact validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty guest name",
				mutate: func(b *builder.BookingBuilder) { b.GuestName = "  " },
				errIs:  booking.ErrEmptyGuestName,
			},
			{
				name:   "invalid guest email",
				mutate: func(b *builder.BookingBuilder) { b.GuestEmail = "not-an-email" },
				errIs:  booking.ErrInvalidGuestMail,
			},
			{
				name:   "phone is optional",
				mutate: func(b *builder.BookingBuilder) { b.GuestPhone = "" },
			},
		})
	})

	t.Run("pricing", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		b.PricePerNight = 15000
		b.CheckOut = b.CheckIn.AddDate(0, 0, 3)

		actual, err := b.BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, int64(45000), actual.TotalPrice().Amount())
	})
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    booking.Status
		to      booking.Status
		allowed bool
	}{
		{booking.StatusPending, booking.StatusConfirmed, true},
		{booking.StatusPending, booking.StatusCheckedIn, false},
		{booking.StatusPending, booking.StatusCancelled, true},
		{booking.StatusConfirmed, booking.StatusCheckedIn, true},
		{booking.StatusConfirmed, booking.StatusCheckedOut, false},
		{booking.StatusConfirmed, booking.StatusCancelled, true},
		{booking.StatusCheckedIn, booking.StatusCheckedOut, true},
		{booking.StatusCheckedIn, booking.StatusConfirmed, false},
		{booking.StatusCheckedIn, booking.StatusCancelled, true},
		{booking.StatusCheckedOut, booking.StatusCancelled, false},
		{booking.StatusCancelled, booking.StatusPending, false},
		{booking.StatusCancelled, booking.StatusConfirmed, false},
		{booking.StatusPending, booking.StatusPending, false},
		{booking.StatusPending, booking.Status("unknown"), false},
	}

	for _, tc := range cases {
		name := string(tc.from) + " -> " + string(tc.to)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestTransitionTo(t *testing.T) {
	actual, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	require.NoError(t, actual.TransitionTo(booking.StatusConfirmed))
	assert.Equal(t, booking.StatusConfirmed, actual.Status())

	err = actual.TransitionTo(booking.StatusCheckedOut)
	require.ErrorIs(t, err, booking.ErrInvalidTransition)
	assert.Equal(t, booking.StatusConfirmed, actual.Status())
}

func TestStayRangeOverlaps(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	mustRange := func(in, out time.Time) booking.StayRange {
		r, err := booking.NewStayRange(in, out, now)
		require.NoError(t, err)
		return r
	}

	base := mustRange(now.AddDate(0, 0, 10), now.AddDate(0, 0, 14))

	assert.True(t, base.Overlaps(mustRange(now.AddDate(0, 0, 12), now.AddDate(0, 0, 16))))
	assert.True(t, base.Overlaps(mustRange(now.AddDate(0, 0, 8), now.AddDate(0, 0, 11))))
	// Half-open ranges: checkout day is free for the next guest.
	assert.False(t, base.Overlaps(mustRange(now.AddDate(0, 0, 14), now.AddDate(0, 0, 18))))
	assert.False(t, base.Overlaps(mustRange(now.AddDate(0, 0, 6), now.AddDate(0, 0, 10))))
}
