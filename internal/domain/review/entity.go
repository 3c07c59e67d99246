package review

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	id           uuid.UUID
	userID       *uuid.UUID
	content      Content
	rating       Rating
	reviewerName ReviewerName
	imageURL     *string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewReview(id uuid.UUID, userID *uuid.UUID, ratingValue int, contentText, reviewerName string, imageURL *string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	content, err := NewContent(contentText)
	if err != nil {
		return nil, err
	}

	name, err := NewReviewerName(reviewerName)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:           id,
		userID:       userID,
		content:      content,
		rating:       rating,
		reviewerName: name,
		imageURL:     imageURL,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func (r *Review) ID() uuid.UUID              { return r.id }
func (r *Review) UserID() *uuid.UUID         { return r.userID }
func (r *Review) Content() Content           { return r.content }
func (r *Review) Rating() Rating             { return r.rating }
func (r *Review) ReviewerName() ReviewerName { return r.reviewerName }
func (r *Review) ImageURL() *string          { return r.imageURL }
func (r *Review) CreatedAt() time.Time       { return r.createdAt }
func (r *Review) UpdatedAt() time.Time       { return r.updatedAt }
