//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/booking"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/clock"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/commands"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/shared"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/common/builder"
	commandsmock "github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/mock/commands"
	sharedmock "github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bookingMocks struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	bookings      *sharedmock.MockBookingRepository
	notifications *sharedmock.MockNotificationRepository
	activityLogs  *sharedmock.MockActivityLogRepository
	mailer        *commandsmock.MockMailer
	notifier      *commandsmock.MockNotifier
}

func newBookingMocks(ctrl *gomock.Controller) *bookingMocks {
	m := &bookingMocks{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		activityLogs:  sharedmock.NewMockActivityLogRepository(ctrl),
		mailer:        commandsmock.NewMockMailer(ctrl),
		notifier:      commandsmock.NewMockNotifier(ctrl),
	}
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Notifications().Return(m.notifications).AnyTimes()
	m.tx.EXPECT().ActivityLogs().Return(m.activityLogs).AnyTimes()
	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()
	return m
}

// expectWithin makes every Within call run the callback against the mock Tx.
func (m *bookingMocks) expectWithin(times int) {
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).Times(times)
}

func (m *bookingMocks) newCommands(clk clock.Clock) commands.BookingCommands {
	return commands.NewBookingCommands(m.uow, m.mailer, m.notifier, clk)
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	notFound := infra.WrapRepoErr("room not found", nil, infra.KindNotFound)

	t.Run("success: pending booking priced from room snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newBookingMocks(ctrl)

		b := builder.NewBookingBuilder()
		req := b.BuildCreateRequestDTO()
		roomSnap := builder.NewRoomBuilder().BuildSnapshot()
		roomSnap.ID = req.RoomID
		bookingID := uuid.New()
		notificationID := uuid.New()

		m.reads.EXPECT().RoomByID(ctx, req.RoomID).Return(roomSnap, nil)
		m.reads.EXPECT().RoomAvailable(ctx, req.RoomID, req.CheckIn, req.CheckOut).Return(true, nil)
		m.expectWithin(1)
		m.bookings.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(bookingID, nil)
		m.notifications.EXPECT().Create(ctx, gomock.Any(), commands.NotificationKindBooking, gomock.Any(), &bookingID).Return(notificationID, nil)
		m.notifier.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

		result, err := m.newCommands(clock.NewMockClock(b.Now)).CreateBooking(ctx, req, nil)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, booking.StatusPending.String(), result.Status)
		assert.Equal(t, int64(40000), result.TotalPrice)
	})

	t.Run("error: unknown room", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newBookingMocks(ctrl)

		b := builder.NewBookingBuilder()
		req := b.BuildCreateRequestDTO()
		m.reads.EXPECT().RoomByID(ctx, req.RoomID).Return(nil, notFound)

		result, err := m.newCommands(clock.NewMockClock(b.Now)).CreateBooking(ctx, req, nil)
		require.ErrorIs(t, err, commands.ErrRoomNotFound)
		assert.Nil(t, result)
	})

	t.Run("error: room already booked for the dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newBookingMocks(ctrl)

		b := builder.NewBookingBuilder()
		req := b.BuildCreateRequestDTO()
		roomSnap := builder.NewRoomBuilder().BuildSnapshot()

		m.reads.EXPECT().RoomByID(ctx, req.RoomID).Return(roomSnap, nil)
		m.reads.EXPECT().RoomAvailable(ctx, req.RoomID, req.CheckIn, req.CheckOut).Return(false, nil)

		_, err := m.newCommands(clock.NewMockClock(b.Now)).CreateBooking(ctx, req, nil)
		require.ErrorIs(t, err, commands.ErrRoomUnavailable)
	})

	t.Run("error: availability check failure refuses the booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newBookingMocks(ctrl)

		b := builder.NewBookingBuilder()
		req := b.BuildCreateRequestDTO()
		roomSnap := builder.NewRoomBuilder().BuildSnapshot()

		m.reads.EXPECT().RoomByID(ctx, req.RoomID).Return(roomSnap, nil)
		m.reads.EXPECT().RoomAvailable(ctx, req.RoomID, req.CheckIn, req.CheckOut).
			Return(false, errors.New("query timeout"))

		_, err := m.newCommands(clock.NewMockClock(b.Now)).CreateBooking(ctx, req, nil)
		require.ErrorIs(t, err, commands.ErrRoomUnavailable)
	})

	t.Run("error: check-in in the past", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newBookingMocks(ctrl)

		b := builder.NewBookingBuilder()
		b.CheckIn = b.Now.AddDate(0, 0, -3)
		req := b.BuildCreateRequestDTO()
		roomSnap := builder.NewRoomBuilder().BuildSnapshot()

		m.reads.EXPECT().RoomByID(ctx, req.RoomID).Return(roomSnap, nil)
		m.reads.EXPECT().RoomAvailable(ctx, req.RoomID, req.CheckIn, req.CheckOut).Return(true, nil)

		_, err := m.newCommands(clock.NewMockClock(b.Now)).CreateBooking(ctx, req, nil)
		require.ErrorIs(t, err, booking.ErrCheckInPast)
	})

	t.Run("notification publish failure does not fail the booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newBookingMocks(ctrl)

		b := builder.NewBookingBuilder()
		req := b.BuildCreateRequestDTO()
		roomSnap := builder.NewRoomBuilder().BuildSnapshot()
		bookingID := uuid.New()

		m.reads.EXPECT().RoomByID(ctx, req.RoomID).Return(roomSnap, nil)
		m.reads.EXPECT().RoomAvailable(ctx, req.RoomID, req.CheckIn, req.CheckOut).Return(true, nil)
		m.expectWithin(1)
		m.bookings.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(bookingID, nil)
		m.notifications.EXPECT().Create(ctx, gomock.Any(), commands.NotificationKindBooking, gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		m.notifier.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down"))

		result, err := m.newCommands(clock.NewMockClock(b.Now)).CreateBooking(ctx, req, nil)
		require.NoError(t, err)
		require.NotNil(t, result)
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()

	t.Run("success: confirm sends mail and marks email_sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newBookingMocks(ctrl)

		snap := builder.NewBookingBuilder().BuildSnapshot()
		roomSnap := builder.NewRoomBuilder().BuildSnapshot()

		m.expectWithin(2)
		m.reads.EXPECT().BookingByID(ctx, snap.ID).Return(snap, nil)
		m.bookings.EXPECT().UpdateStatus(ctx, gomock.Any(), snap.ID, booking.StatusConfirmed).Return(nil)
		m.activityLogs.EXPECT().Record(ctx, gomock.Any(), gomock.Any()).Return(nil)
		m.reads.EXPECT().RoomByID(ctx, snap.RoomID).Return(roomSnap, nil)
		m.mailer.EXPECT().SendBookingConfirmation(ctx, gomock.Any()).Return(nil)
		m.bookings.EXPECT().UpdateEmailSent(ctx, gomock.Any(), snap.ID, true).Return(nil)

		result, err := m.newCommands(clock.NewRealClock()).UpdateStatus(ctx, snap.ID, "confirmed", actorID)
		require.NoError(t, err)
		require.Equal(t, "confirmed", result.Status)
		require.True(t, result.EmailSent)
	})

	t.Run("mail failure leaves the booking confirmed without email_sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newBookingMocks(ctrl)

		snap := builder.NewBookingBuilder().BuildSnapshot()
		roomSnap := builder.NewRoomBuilder().BuildSnapshot()

		m.expectWithin(1)
		m.reads.EXPECT().BookingByID(ctx, snap.ID).Return(snap, nil)
		m.bookings.EXPECT().UpdateStatus(ctx, gomock.Any(), snap.ID, booking.StatusConfirmed).Return(nil)
		m.activityLogs.EXPECT().Record(ctx, gomock.Any(), gomock.Any()).Return(nil)
		m.reads.EXPECT().RoomByID(ctx, snap.RoomID).Return(roomSnap, nil)
		m.mailer.EXPECT().SendBookingConfirmation(ctx, gomock.Any()).Return(errors.New("broker unreachable"))

		result, err := m.newCommands(clock.NewRealClock()).UpdateStatus(ctx, snap.ID, "confirmed", actorID)
		require.NoError(t, err)
		require.Equal(t, "confirmed", result.Status)
		require.False(t, result.EmailSent)
	})

	t.Run("no mail on non-confirm transitions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newBookingMocks(ctrl)

		snap := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = "confirmed"
		}).BuildSnapshot()

		m.expectWithin(1)
		m.reads.EXPECT().BookingByID(ctx, snap.ID).Return(snap, nil)
		m.bookings.EXPECT().UpdateStatus(ctx, gomock.Any(), snap.ID, booking.StatusCheckedIn).Return(nil)
		m.activityLogs.EXPECT().Record(ctx, gomock.Any(), gomock.Any()).Return(nil)

		result, err := m.newCommands(clock.NewRealClock()).UpdateStatus(ctx, snap.ID, "checked_in", actorID)
		require.NoError(t, err)
		require.Equal(t, "checked_in", result.Status)
	})

	t.Run("error: illegal transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newBookingMocks(ctrl)

		snap := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = "checked_out"
		}).BuildSnapshot()

		m.expectWithin(1)
		m.reads.EXPECT().BookingByID(ctx, snap.ID).Return(snap, nil)

		_, err := m.newCommands(clock.NewRealClock()).UpdateStatus(ctx, snap.ID, "confirmed", actorID)
		require.ErrorIs(t, err, commands.ErrInvalidTransition)
	})

	t.Run("error: unknown status string", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newBookingMocks(ctrl)

		_, err := m.newCommands(clock.NewRealClock()).UpdateStatus(ctx, uuid.New(), "archived", actorID)
		require.ErrorIs(t, err, commands.ErrInvalidTransition)
	})

	t.Run("error: booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newBookingMocks(ctrl)

		bookingID := uuid.New()
		m.expectWithin(1)
		m.reads.EXPECT().BookingByID(ctx, bookingID).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := m.newCommands(clock.NewRealClock()).UpdateStatus(ctx, bookingID, "confirmed", actorID)
		require.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}

func TestDeleteBooking(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()

	t.Run("success records an audit entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newBookingMocks(ctrl)

		bookingID := uuid.New()
		m.expectWithin(1)
		m.bookings.EXPECT().Delete(ctx, gomock.Any(), bookingID).Return(nil)
		m.activityLogs.EXPECT().Record(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, entry shared.ActivityEntry) error {
				assert.Equal(t, "booking.deleted", entry.Action)
				assert.Equal(t, &actorID, entry.ActorID)
				return nil
			})

		err := m.newCommands(clock.NewRealClock()).DeleteBooking(ctx, bookingID, actorID)
		require.NoError(t, err)
	})

	t.Run("error: booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newBookingMocks(ctrl)

		bookingID := uuid.New()
		m.expectWithin(1)
		m.bookings.EXPECT().Delete(ctx, gomock.Any(), bookingID).
			Return(infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		err := m.newCommands(clock.NewRealClock()).DeleteBooking(ctx, bookingID, actorID)
		require.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}
