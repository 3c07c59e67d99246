package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/booking"
	reqdto "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/request"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/mail"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/notify"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/clock"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/errs"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/shared"
)

var (
	ErrRoomNotFound      = errs.New("room not found")
	ErrRoomUnavailable   = errs.New("room unavailable for requested dates")
	ErrBookingNotFound   = errs.New("booking not found")
	ErrInvalidTransition = errs.New("invalid booking status transition")
)

type CreateBookingResult struct {
	BookingID  uuid.UUID
	Status     string
	TotalPrice int64
}

// UpdateStatusResult reports the outcome of a status transition. EmailSent
// is false when the confirmation mail could not be enqueued, so the back
// office can surface the warning and resend.
type UpdateStatusResult struct {
	Status    string
	EmailSent bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID *uuid.UUID) (*CreateBookingResult, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, next string, actorID uuid.UUID) (*UpdateStatusResult, error)
	DeleteBooking(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	mailer   Mailer
	notifier Notifier
	clock    clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, mailer Mailer, notifier Notifier, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, mailer: mailer, notifier: notifier, clock: clk}
}

func (uc *bookingCommandsImpl) CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID *uuid.UUID) (*CreateBookingResult, error) {
	roomSnap, err := uc.uow.CommandReads().RoomByID(ctx, req.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	// The availability oracle fails closed: an error here refuses the
	// booking rather than risking a double-sell.
	available, err := uc.uow.CommandReads().RoomAvailable(ctx, req.RoomID, req.CheckIn, req.CheckOut)
	if err != nil {
		slog.Warn("availability check failed, refusing booking",
			"room_id", req.RoomID, "error", err.Error())
		return nil, ErrRoomUnavailable
	}
	if !available {
		return nil, ErrRoomUnavailable
	}

	spec := booking.RoomSpec{ID: roomSnap.ID, PricePerNight: roomSnap.PricePerNight}
	bk, err := req.ToDomain(spec, userID, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var notification *notify.Event
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bookingID, createErr := tx.Bookings().Create(ctx, tx.DB(), bk)
		if createErr != nil {
			return createErr
		}

		summary := fmt.Sprintf("New booking by %s for %s", bk.Guest().Name(), roomSnap.Name)
		notificationID, createErr := tx.Notifications().Create(ctx, tx.DB(), NotificationKindBooking, summary, &bookingID)
		if createErr != nil {
			return createErr
		}
		notification = &notify.Event{
			ID:        notificationID,
			Kind:      NotificationKindBooking,
			Summary:   summary,
			EntityID:  &bookingID,
			CreatedAt: uc.clock.Now(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publishNotification(ctx, notification)

	return &CreateBookingResult{
		BookingID:  bk.ID(),
		Status:     bk.Status().String(),
		TotalPrice: bk.TotalPrice().Amount(),
	}, nil
}

func (uc *bookingCommandsImpl) UpdateStatus(ctx context.Context, bookingID uuid.UUID, next string, actorID uuid.UUID) (*UpdateStatusResult, error) {
	nextStatus, err := booking.NewStatus(next)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTransition)
	}

	var snap *shared.BookingSnapshot
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, readErr := tx.Reads().BookingByID(ctx, bookingID)
		if readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return readErr
		}

		if !booking.Status(current.Status).CanTransitionTo(nextStatus) {
			return ErrInvalidTransition
		}

		if updateErr := tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, nextStatus); updateErr != nil {
			return updateErr
		}
		snap = current

		return tx.ActivityLogs().Record(ctx, tx.DB(), shared.ActivityEntry{
			ActorID:    &actorID,
			Action:     "booking.status_changed",
			EntityType: "booking",
			EntityID:   &bookingID,
			Detail:     fmt.Sprintf("%s -> %s", current.Status, nextStatus),
		})
	})
	if err != nil {
		return nil, err
	}

	// Confirmation mail goes out after the transaction commits; a broker
	// failure downgrades to a warning and leaves email_sent false so the
	// back office can resend.
	emailSent := snap.EmailSent
	if nextStatus == booking.StatusConfirmed {
		emailSent = uc.sendConfirmationMail(ctx, snap)
	}
	return &UpdateStatusResult{Status: nextStatus.String(), EmailSent: emailSent}, nil
}

func (uc *bookingCommandsImpl) DeleteBooking(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().Delete(ctx, tx.DB(), bookingID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		return tx.ActivityLogs().Record(ctx, tx.DB(), shared.ActivityEntry{
			ActorID:    &actorID,
			Action:     "booking.deleted",
			EntityType: "booking",
			EntityID:   &bookingID,
		})
	})
}

func (uc *bookingCommandsImpl) sendConfirmationMail(ctx context.Context, snap *shared.BookingSnapshot) bool {
	roomName := ""
	if roomSnap, err := uc.uow.CommandReads().RoomByID(ctx, snap.RoomID); err == nil {
		roomName = roomSnap.Name
	}

	mailErr := uc.mailer.SendBookingConfirmation(ctx, mail.BookingConfirmation{
		BookingID:  snap.ID.String(),
		GuestName:  snap.GuestName,
		GuestEmail: snap.GuestEmail,
		RoomName:   roomName,
		CheckIn:    snap.CheckIn,
		CheckOut:   snap.CheckOut,
		TotalPrice: snap.TotalPrice,
	})
	if mailErr != nil {
		slog.Warn("failed to enqueue booking confirmation mail",
			"booking_id", snap.ID, "error", mailErr.Error())
		return false
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().UpdateEmailSent(ctx, tx.DB(), snap.ID, true)
	})
	if err != nil {
		slog.Warn("failed to mark booking mail as sent", "booking_id", snap.ID, "error", err.Error())
	}
	return true
}

func (uc *bookingCommandsImpl) publishNotification(ctx context.Context, evt *notify.Event) {
	if evt == nil {
		return
	}
	if err := uc.notifier.Publish(ctx, *evt); err != nil {
		slog.Warn("failed to publish admin notification", "kind", evt.Kind, "error", err.Error())
	}
}
