package request

import (
	"time"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/review"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	ReviewerName string  `json:"reviewer_name" binding:"required"`
	Content      string  `json:"content" binding:"required"`
	Rating       int     `json:"rating" binding:"required,gte=1,lte=5"`
	ImageURL     *string `json:"image_url,omitempty"`
}

func (r *CreateReviewRequest) ToDomain(userID *uuid.UUID, now time.Time) (*review.Review, error) {
	return review.NewReview(uuid.Nil, userID, r.Rating, r.Content, r.ReviewerName, r.ImageURL, now)
}
