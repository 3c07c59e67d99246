package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/user"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/errs"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/shared"
)

var (
	ErrTeamMemberNotFound = errs.New("team member not found")
	ErrSelfDemotion       = errs.New("admins cannot change their own role")
	ErrSelfDeactivation   = errs.New("admins cannot deactivate themselves")
)

type TeamCommands interface {
	UpdateRole(ctx context.Context, memberID uuid.UUID, role string, actorID uuid.UUID) error
	Deactivate(ctx context.Context, memberID uuid.UUID, actorID uuid.UUID) error
	GrantPermission(ctx context.Context, memberID uuid.UUID, permission string, actorID uuid.UUID) error
	RevokePermission(ctx context.Context, memberID uuid.UUID, permission string, actorID uuid.UUID) error
}

type teamCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewTeamCommands(uow shared.UnitOfWork) TeamCommands {
	return &teamCommandsImpl{uow: uow}
}

func (uc *teamCommandsImpl) UpdateRole(ctx context.Context, memberID uuid.UUID, roleName string, actorID uuid.UUID) error {
	if memberID == actorID {
		return ErrSelfDemotion
	}

	role, err := user.NewRole(roleName)
	if err != nil {
		return err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Users().UpdateRole(ctx, tx.DB(), memberID, role); updateErr != nil {
			return updateErr
		}
		return tx.ActivityLogs().Record(ctx, tx.DB(), shared.ActivityEntry{
			ActorID:    &actorID,
			Action:     "team.role_changed",
			EntityType: "user",
			EntityID:   &memberID,
			Detail:     role.String(),
		})
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTeamMemberNotFound
		}
		return err
	}
	return nil
}

func (uc *teamCommandsImpl) Deactivate(ctx context.Context, memberID uuid.UUID, actorID uuid.UUID) error {
	if memberID == actorID {
		return ErrSelfDeactivation
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if deactivateErr := tx.Users().Deactivate(ctx, tx.DB(), memberID); deactivateErr != nil {
			return deactivateErr
		}
		return tx.ActivityLogs().Record(ctx, tx.DB(), shared.ActivityEntry{
			ActorID:    &actorID,
			Action:     "team.deactivated",
			EntityType: "user",
			EntityID:   &memberID,
		})
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTeamMemberNotFound
		}
		return err
	}
	return nil
}

func (uc *teamCommandsImpl) GrantPermission(ctx context.Context, memberID uuid.UUID, permission string, actorID uuid.UUID) error {
	p, err := user.NewPermission(permission)
	if err != nil {
		return err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, readErr := tx.Reads().UserByID(ctx, memberID); readErr != nil {
			return readErr
		}
		if grantErr := tx.Permissions().Grant(ctx, tx.DB(), memberID, p, actorID); grantErr != nil {
			return grantErr
		}
		return tx.ActivityLogs().Record(ctx, tx.DB(), shared.ActivityEntry{
			ActorID:    &actorID,
			Action:     "team.permission_granted",
			EntityType: "user",
			EntityID:   &memberID,
			Detail:     p.String(),
		})
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTeamMemberNotFound
		}
		return err
	}
	return nil
}

func (uc *teamCommandsImpl) RevokePermission(ctx context.Context, memberID uuid.UUID, permission string, actorID uuid.UUID) error {
	p, err := user.NewPermission(permission)
	if err != nil {
		return err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if revokeErr := tx.Permissions().Revoke(ctx, tx.DB(), memberID, p); revokeErr != nil {
			return revokeErr
		}
		return tx.ActivityLogs().Record(ctx, tx.DB(), shared.ActivityEntry{
			ActorID:    &actorID,
			Action:     "team.permission_revoked",
			EntityType: "user",
			EntityID:   &memberID,
			Detail:     p.String(),
		})
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTeamMemberNotFound
		}
		return err
	}
	return nil
}
