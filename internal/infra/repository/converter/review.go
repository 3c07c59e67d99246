package converter

import (
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/review"
	sqlc "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/infra/sqlc/generated"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) sqlc.CreateReviewParams {
	return sqlc.CreateReviewParams{
		ID:           r.ID(),
		UserID:       pgconv.UUIDPtrToPgtype(r.UserID()),
		ReviewerName: r.ReviewerName().String(),
		Content:      r.Content().String(),
		Rating:       int32(r.Rating().Value()),
		ImageUrl:     pgconv.StringPtrToPgtype(r.ImageURL()),
	}
}
