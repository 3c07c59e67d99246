package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/errs"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/shared"
)

var ErrUnknownNotificationKind = errs.New("unknown notification kind")

type NotificationCommands interface {
	MarkSeen(ctx context.Context, userID uuid.UUID, kind string) error
}

type notificationCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewNotificationCommands(uow shared.UnitOfWork) NotificationCommands {
	return &notificationCommandsImpl{uow: uow}
}

func (uc *notificationCommandsImpl) MarkSeen(ctx context.Context, userID uuid.UUID, kind string) error {
	switch kind {
	case NotificationKindBooking, NotificationKindReview, NotificationKindContact:
	default:
		return ErrUnknownNotificationKind
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().MarkSeen(ctx, tx.DB(), userID, kind)
	})
}
