package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	reqdto "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/request"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/notify"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/clock"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/errs"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/shared"
)

var ErrReviewNotFound = errs.New("review not found")

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req reqdto.CreateReviewRequest, userID *uuid.UUID) (*CreateReviewResult, error)
	DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID) error
}

type reviewCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier Notifier
	clock    clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, notifier Notifier, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, notifier: notifier, clock: clk}
}

func (uc *reviewCommandsImpl) CreateReview(ctx context.Context, req reqdto.CreateReviewRequest, userID *uuid.UUID) (*CreateReviewResult, error) {
	rev, err := req.ToDomain(userID, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	var notification *notify.Event
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Reviews().Create(ctx, tx.DB(), rev)
		if createErr != nil {
			return createErr
		}
		createdID = id

		summary := fmt.Sprintf("New %d-star review from %s", rev.Rating().Value(), rev.ReviewerName().String())
		notificationID, createErr := tx.Notifications().Create(ctx, tx.DB(), NotificationKindReview, summary, &id)
		if createErr != nil {
			return createErr
		}
		notification = &notify.Event{
			ID:        notificationID,
			Kind:      NotificationKindReview,
			Summary:   summary,
			EntityID:  &id,
			CreatedAt: uc.clock.Now(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if pubErr := uc.notifier.Publish(ctx, *notification); pubErr != nil {
		slog.Warn("failed to publish admin notification", "kind", notification.Kind, "error", pubErr.Error())
	}

	return &CreateReviewResult{ReviewID: createdID}, nil
}

func (uc *reviewCommandsImpl) DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if deleteErr := tx.Reviews().Delete(ctx, tx.DB(), reviewID); deleteErr != nil {
			return deleteErr
		}
		return tx.ActivityLogs().Record(ctx, tx.DB(), shared.ActivityEntry{
			ActorID:    &actorID,
			Action:     "review.deleted",
			EntityType: "review",
			EntityID:   &reviewID,
		})
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	return nil
}
