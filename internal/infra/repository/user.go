package repository

import (
	"context"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/user"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	sqlc "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (uuid.UUID, error)
	UpdateUserRole(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserRoleParams) (int64, error)
	DeactivateUser(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, params sqlc.CreateUserParams) (uuid.UUID, error) {
	id, err := r.queries.CreateUser(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, role user.Role) error {
	affected, err := r.queries.UpdateUserRole(ctx, tx, sqlc.UpdateUserRoleParams{
		ID:   userID,
		Role: role.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user role", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Deactivate(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error {
	affected, err := r.queries.DeactivateUser(ctx, tx, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate user", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error {
	if err := r.queries.UpdateUserLastLogin(ctx, tx, userID); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
