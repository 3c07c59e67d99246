package readstore

import (
	"context"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	sqlc "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/sqlc/generated"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/pgconv"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserViewQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.User, error)
	GetUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.User, error)
	ListTeamMembers(ctx context.Context, db sqlc.DBTX) ([]sqlc.User, error)
	ListPermissionsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]string, error)
}

type UserReadStore struct {
	queries UserViewQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries *sqlc.Queries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	perms, err := r.queries.ListPermissionsByUser(ctx, r.db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load user permissions", err)
	}

	return toAuthorizedUserView(row, perms), nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.GetUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	perms, err := r.queries.ListPermissionsByUser(ctx, r.db, row.ID)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to load user permissions", err)
	}

	return toAuthorizedUserView(row, perms), row.PasswordHash, nil
}

func (r *UserReadStore) FindTeamMembers(ctx context.Context) ([]*queries.TeamMemberView, error) {
	rows, err := r.queries.ListTeamMembers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list team members", err)
	}

	result := make([]*queries.TeamMemberView, len(rows))
	for i, row := range rows {
		perms, err := r.queries.ListPermissionsByUser(ctx, r.db, row.ID)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to load member permissions", err)
		}
		result[i] = &queries.TeamMemberView{
			ID:          row.ID,
			Email:       row.Email,
			FullName:    row.FullName,
			Role:        row.Role,
			Permissions: permsOrEmpty(perms),
			LastLogin:   pgconv.TimePtrFromPgtype(row.LastLogin),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func toAuthorizedUserView(row sqlc.User, perms []string) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:          row.ID,
		Email:       row.Email,
		FullName:    row.FullName,
		Role:        row.Role,
		Permissions: permsOrEmpty(perms),
		IsActive:    row.IsActive,
	}
}

func permsOrEmpty(perms []string) []string {
	if perms == nil {
		return []string{}
	}
	return perms
}
