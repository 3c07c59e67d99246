package readstore

import (
	"context"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	sqlc "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/sqlc/generated"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/pgconv"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"
)

type ReviewViewQueries interface {
	ListReviews(ctx context.Context, db sqlc.DBTX, limit int64) ([]sqlc.Review, error)
	ReviewRatingStats(ctx context.Context, db sqlc.DBTX) (sqlc.ReviewRatingStatsRow, error)
}

type ReviewReadStore struct {
	queries ReviewViewQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries *sqlc.Queries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindLatest(ctx context.Context, limit int32) ([]*queries.ReviewView, error) {
	rows, err := r.queries.ListReviews(ctx, r.db, int64(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}

	result := make([]*queries.ReviewView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReviewView{
			ID:           row.ID,
			UserID:       pgconv.UUIDPtrFromPgtype(row.UserID),
			ReviewerName: row.ReviewerName,
			Content:      row.Content,
			Rating:       row.Rating,
			ImageURL:     pgconv.StringPtrFromPgtype(row.ImageUrl),
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *ReviewReadStore) RatingStats(ctx context.Context) (*queries.ReviewStatsView, error) {
	row, err := r.queries.ReviewRatingStats(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load review stats", err)
	}
	return &queries.ReviewStatsView{
		Total:   row.Total,
		Average: row.Average,
	}, nil
}
