package response

import (
	"time"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID           uuid.UUID  `json:"id"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	ReviewerName string     `json:"reviewer_name"`
	Content      string     `json:"content"`
	Rating       int32      `json:"rating"`
	ImageURL     *string    `json:"image_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type ReviewListResponse struct {
	Reviews []*ReviewResponse `json:"reviews"`
}

type ReviewStatsResponse struct {
	Total   int64   `json:"total"`
	Average float64 `json:"average"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:           v.ID,
		UserID:       v.UserID,
		ReviewerName: v.ReviewerName,
		Content:      v.Content,
		Rating:       v.Rating,
		ImageURL:     v.ImageURL,
		CreatedAt:    v.CreatedAt,
	}
}

func FromReviewViews(views []*queries.ReviewView) *ReviewListResponse {
	reviews := make([]*ReviewResponse, 0, len(views))
	for _, v := range views {
		reviews = append(reviews, FromReviewView(v))
	}
	return &ReviewListResponse{Reviews: reviews}
}

func FromReviewStats(v *queries.ReviewStatsView) *ReviewStatsResponse {
	return &ReviewStatsResponse{Total: v.Total, Average: v.Average}
}
