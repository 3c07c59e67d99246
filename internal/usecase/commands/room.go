package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/room"
	reqdto "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/request"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/errs"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/shared"
)

var (
	ErrDuplicateRoomNumber = errs.New("room number already in use")
	ErrRoomHasBookings     = errs.New("room still referenced by bookings")
)

type CreateRoomResult struct {
	RoomID uuid.UUID
}

type RoomCommands interface {
	CreateRoom(ctx context.Context, req reqdto.CreateRoomRequest, actorID uuid.UUID) (*CreateRoomResult, error)
	UpdateRoom(ctx context.Context, roomID uuid.UUID, req reqdto.UpdateRoomRequest, actorID uuid.UUID) error
	SetRoomStatus(ctx context.Context, roomID uuid.UUID, req reqdto.SetRoomStatusRequest, actorID uuid.UUID) error
	DeleteRoom(ctx context.Context, roomID uuid.UUID, actorID uuid.UUID) error
}

type roomCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRoomCommands(uow shared.UnitOfWork) RoomCommands {
	return &roomCommandsImpl{uow: uow}
}

func (uc *roomCommandsImpl) CreateRoom(ctx context.Context, req reqdto.CreateRoomRequest, actorID uuid.UUID) (*CreateRoomResult, error) {
	rm, err := req.ToDomain()
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, createErr := tx.Rooms().Create(ctx, tx.DB(), rm); createErr != nil {
			return createErr
		}
		return tx.ActivityLogs().Record(ctx, tx.DB(), shared.ActivityEntry{
			ActorID:    &actorID,
			Action:     "room.created",
			EntityType: "room",
			EntityID:   ptr(rm.ID()),
			Detail:     fmt.Sprintf("%s (%s)", rm.Name(), rm.RoomNumber()),
		})
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateRoomNumber
		}
		return nil, err
	}

	return &CreateRoomResult{RoomID: rm.ID()}, nil
}

func (uc *roomCommandsImpl) UpdateRoom(ctx context.Context, roomID uuid.UUID, req reqdto.UpdateRoomRequest, actorID uuid.UUID) error {
	roomType, err := room.NewRoomType(req.RoomType)
	if err != nil {
		return err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := tx.Reads().RoomByID(ctx, roomID)
		if readErr != nil {
			return readErr
		}

		status, statusErr := room.NewStatus(snap.Status)
		if statusErr != nil {
			return statusErr
		}

		rm := room.ReconstructRoom(
			roomID,
			req.Name, req.RoomNumber,
			req.PricePerNight, req.Capacity,
			roomType,
			req.Description, req.ImageURL,
			req.Features,
			status,
			nil, nil,
			time.Time{}, time.Time{},
		)
		if updateErr := tx.Rooms().Update(ctx, tx.DB(), rm); updateErr != nil {
			return updateErr
		}
		return tx.ActivityLogs().Record(ctx, tx.DB(), shared.ActivityEntry{
			ActorID:    &actorID,
			Action:     "room.updated",
			EntityType: "room",
			EntityID:   &roomID,
			Detail:     fmt.Sprintf("%s (%s)", req.Name, req.RoomNumber),
		})
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrRoomNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return ErrDuplicateRoomNumber
		}
		return err
	}
	return nil
}

func (uc *roomCommandsImpl) SetRoomStatus(ctx context.Context, roomID uuid.UUID, req reqdto.SetRoomStatusRequest, actorID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := tx.Reads().RoomByID(ctx, roomID)
		if readErr != nil {
			return readErr
		}

		roomType, typeErr := room.NewRoomType(snap.RoomType)
		if typeErr != nil {
			return typeErr
		}
		status, statusErr := room.NewStatus(snap.Status)
		if statusErr != nil {
			return statusErr
		}

		rm := room.ReconstructRoom(
			snap.ID,
			snap.Name, snap.RoomNumber,
			snap.PricePerNight, snap.Capacity,
			roomType,
			"", "",
			nil,
			status,
			nil, nil,
			time.Time{}, time.Time{},
		)

		switch req.Status {
		case room.StatusTaken.String():
			if markErr := rm.MarkTaken(req.TakenFrom, req.TakenUntil); markErr != nil {
				return markErr
			}
		default:
			rm.MarkAvailable()
		}

		if updateErr := tx.Rooms().UpdateStatus(ctx, tx.DB(), rm); updateErr != nil {
			return updateErr
		}
		return tx.ActivityLogs().Record(ctx, tx.DB(), shared.ActivityEntry{
			ActorID:    &actorID,
			Action:     "room.status_changed",
			EntityType: "room",
			EntityID:   &roomID,
			Detail:     req.Status,
		})
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return err
	}
	return nil
}

func (uc *roomCommandsImpl) DeleteRoom(ctx context.Context, roomID uuid.UUID, actorID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if deleteErr := tx.Rooms().Delete(ctx, tx.DB(), roomID); deleteErr != nil {
			return deleteErr
		}
		return tx.ActivityLogs().Record(ctx, tx.DB(), shared.ActivityEntry{
			ActorID:    &actorID,
			Action:     "room.deleted",
			EntityType: "room",
			EntityID:   &roomID,
		})
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrRoomNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrRoomHasBookings
		}
		return err
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
