package review

import (
	"errors"
	"strings"
)

const MaxContentLength = 1000

var (
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrEmptyContent     = errors.New("review content cannot be empty")
	ErrContentTooLong   = errors.New("review content exceeds maximum length")
	ErrEmptyReviewer    = errors.New("reviewer name cannot be empty")
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

type Content struct {
	text string
}

func NewContent(s string) (Content, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Content{}, ErrEmptyContent
	}
	if len(t) > MaxContentLength {
		return Content{}, ErrContentTooLong
	}
	return Content{text: t}, nil
}

func (c Content) String() string { return c.text }

type ReviewerName struct {
	value string
}

func NewReviewerName(s string) (ReviewerName, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return ReviewerName{}, ErrEmptyReviewer
	}
	return ReviewerName{value: t}, nil
}

func (n ReviewerName) String() string { return n.value }
