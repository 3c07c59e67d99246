//go:build unit || e2e

package builder

import (
	"time"

	domreview "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/review"
	reqdto "github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/handler/dto/request"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	UserID       *uuid.UUID
	ReviewerName string
	Content      string
	Rating       int
	ImageURL     *string
	CreatedAt    time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ReviewerName: "Chika Eze",
		Content:      "Excellent service!",
		Rating:       5,
		CreatedAt:    time.Now(),
	}
}

func (b *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(b)
	return b
}

func (b *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(uuid.Nil, b.UserID, b.Rating, b.Content, b.ReviewerName, b.ImageURL, b.CreatedAt)
}

func (b *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		ReviewerName: b.ReviewerName,
		Content:      b.Content,
		Rating:       b.Rating,
		ImageURL:     b.ImageURL,
	}
}

func (b *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:           uuid.New(),
		UserID:       b.UserID,
		ReviewerName: b.ReviewerName,
		Content:      b.Content,
		Rating:       int32(b.Rating),
		ImageURL:     b.ImageURL,
		CreatedAt:    b.CreatedAt,
	}
}
