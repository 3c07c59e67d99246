package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/event"
	reqdto "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/request"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/errs"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/shared"
)

var (
	ErrEventNotFound = errs.New("gallery event not found")
	ErrImageUpload   = errs.New("image upload failed")
)

type CreateEventResult struct {
	EventID uuid.UUID
}

type EventCommands interface {
	CreateEvent(ctx context.Context, req reqdto.CreateEventRequest, actorID uuid.UUID) (*CreateEventResult, error)
	UpdateEvent(ctx context.Context, eventID uuid.UUID, req reqdto.UpdateEventRequest, actorID uuid.UUID) error
	DeleteEvent(ctx context.Context, eventID uuid.UUID, actorID uuid.UUID) error
}

type eventCommandsImpl struct {
	uow      shared.UnitOfWork
	uploader ImageUploader
}

func NewEventCommands(uow shared.UnitOfWork, uploader ImageUploader) EventCommands {
	return &eventCommandsImpl{uow: uow, uploader: uploader}
}

func (uc *eventCommandsImpl) CreateEvent(ctx context.Context, req reqdto.CreateEventRequest, actorID uuid.UUID) (*CreateEventResult, error) {
	imageURL, err := uc.resolveImage(ctx, req.ImageData, req.ImageURL, uuid.New())
	if err != nil {
		return nil, err
	}

	ev, err := req.ToDomain(imageURL)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Events().Create(ctx, tx.DB(), ev)
		if createErr != nil {
			return createErr
		}
		createdID = id
		return tx.ActivityLogs().Record(ctx, tx.DB(), shared.ActivityEntry{
			ActorID:    &actorID,
			Action:     "event.created",
			EntityType: "event",
			EntityID:   &id,
			Detail:     ev.Title(),
		})
	})
	if err != nil {
		return nil, err
	}

	return &CreateEventResult{EventID: createdID}, nil
}

func (uc *eventCommandsImpl) UpdateEvent(ctx context.Context, eventID uuid.UUID, req reqdto.UpdateEventRequest, actorID uuid.UUID) error {
	imageURL, err := uc.resolveImage(ctx, req.ImageData, req.ImageURL, eventID)
	if err != nil {
		return err
	}

	ev := event.ReconstructEvent(eventID, req.Title, req.Description, imageURL, req.EventDate, time.Time{}, time.Time{})

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Events().Update(ctx, tx.DB(), ev); updateErr != nil {
			return updateErr
		}
		return tx.ActivityLogs().Record(ctx, tx.DB(), shared.ActivityEntry{
			ActorID:    &actorID,
			Action:     "event.updated",
			EntityType: "event",
			EntityID:   &eventID,
			Detail:     req.Title,
		})
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	return nil
}

func (uc *eventCommandsImpl) DeleteEvent(ctx context.Context, eventID uuid.UUID, actorID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if deleteErr := tx.Events().Delete(ctx, tx.DB(), eventID); deleteErr != nil {
			return deleteErr
		}
		return tx.ActivityLogs().Record(ctx, tx.DB(), shared.ActivityEntry{
			ActorID:    &actorID,
			Action:     "event.deleted",
			EntityType: "event",
			EntityID:   &eventID,
		})
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	return nil
}

// resolveImage prefers freshly uploaded data over a caller-supplied URL.
func (uc *eventCommandsImpl) resolveImage(ctx context.Context, imageData, imageURL string, publicID uuid.UUID) (string, error) {
	if imageData == "" {
		return imageURL, nil
	}
	uploaded, err := uc.uploader.UploadBase64(ctx, imageData, publicID.String())
	if err != nil {
		return "", errs.Mark(err, ErrImageUpload)
	}
	return uploaded, nil
}
