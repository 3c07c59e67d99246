package queries

import (
	"context"
)

type ReviewQueries interface {
	List(ctx context.Context, limit int) ([]*ReviewView, error)
	Stats(ctx context.Context) (*ReviewStatsView, error)
}

type ReviewViewRepo interface {
	FindLatest(ctx context.Context, limit int32) ([]*ReviewView, error)
	RatingStats(ctx context.Context) (*ReviewStatsView, error)
}

type reviewQueriesImpl struct {
	repo ReviewViewRepo
}

func NewReviewQueries(repo ReviewViewRepo) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) List(ctx context.Context, limit int) ([]*ReviewView, error) {
	return q.repo.FindLatest(ctx, int32(ValidateLimit(limit)))
}

func (q *reviewQueriesImpl) Stats(ctx context.Context) (*ReviewStatsView, error) {
	return q.repo.RatingStats(ctx)
}
