package repository

import (
	"context"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/user"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	sqlc "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/sqlc/generated"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PermissionWriteQueries interface {
	UpsertPermission(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPermissionParams) error
	DeletePermission(ctx context.Context, db sqlc.DBTX, arg sqlc.DeletePermissionParams) (int64, error)
}

type PermissionRepository struct {
	queries PermissionWriteQueries
}

func NewPermissionRepository(queries PermissionWriteQueries) *PermissionRepository {
	return &PermissionRepository{queries: queries}
}

func (r *PermissionRepository) Grant(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, p user.Permission, grantedBy uuid.UUID) error {
	err := r.queries.UpsertPermission(ctx, tx, sqlc.UpsertPermissionParams{
		UserID:     userID,
		Permission: p.String(),
		GrantedBy:  pgconv.UUIDToPgtype(grantedBy),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to grant permission", err)
	}
	return nil
}

func (r *PermissionRepository) Revoke(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, p user.Permission) error {
	_, err := r.queries.DeletePermission(ctx, tx, sqlc.DeletePermissionParams{
		UserID:     userID,
		Permission: p.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to revoke permission", err)
	}
	return nil
}
