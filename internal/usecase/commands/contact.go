package commands

import (
	"context"
	"fmt"
	"log/slog"

	reqdto "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/request"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/mail"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/notify"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/clock"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/errs"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/shared"
)

var ErrContactDelivery = errs.New("contact message delivery failed")

type ContactCommands interface {
	SendContactMessage(ctx context.Context, req reqdto.ContactRequest) error
}

type contactCommandsImpl struct {
	uow      shared.UnitOfWork
	mailer   Mailer
	notifier Notifier
	clock    clock.Clock
}

func NewContactCommands(uow shared.UnitOfWork, mailer Mailer, notifier Notifier, clk clock.Clock) ContactCommands {
	return &contactCommandsImpl{uow: uow, mailer: mailer, notifier: notifier, clock: clk}
}

// SendContactMessage relays the form to the admin inbox. Messages are not
// persisted as rows; only the notification badge records that one arrived.
func (uc *contactCommandsImpl) SendContactMessage(ctx context.Context, req reqdto.ContactRequest) error {
	err := uc.mailer.SendContactMessage(ctx, mail.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return errs.Mark(err, ErrContactDelivery)
	}

	summary := fmt.Sprintf("Contact message from %s: %s", req.Name, req.Subject)
	var notification *notify.Event
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		notificationID, createErr := tx.Notifications().Create(ctx, tx.DB(), NotificationKindContact, summary, nil)
		if createErr != nil {
			return createErr
		}
		notification = &notify.Event{
			ID:        notificationID,
			Kind:      NotificationKindContact,
			Summary:   summary,
			CreatedAt: uc.clock.Now(),
		}
		return nil
	})
	if err != nil {
		// Mail is already on its way; losing the badge is not worth a 5xx.
		slog.Warn("failed to record contact notification", "error", err.Error())
		return nil
	}

	if pubErr := uc.notifier.Publish(ctx, *notification); pubErr != nil {
		slog.Warn("failed to publish admin notification", "kind", notification.Kind, "error", pubErr.Error())
	}
	return nil
}
