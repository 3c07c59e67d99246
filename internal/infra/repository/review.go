package repository

import (
	"context"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/review"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/repository/converter"
	sqlc "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) (uuid.UUID, error)
	DeleteReview(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
}

func NewReviewRepository(queries ReviewWriteQueries) *ReviewRepository {
	return &ReviewRepository{queries: queries}
}

func (r *ReviewRepository) Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) (uuid.UUID, error) {
	id, err := r.queries.CreateReview(ctx, tx, converter.ReviewToCreateParams(rev))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, tx sqlc.DBTX, reviewID uuid.UUID) error {
	affected, err := r.queries.DeleteReview(ctx, tx, reviewID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}
