//go:build unit

package review_test

import (
	"strings"
	"testing"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/domain/review"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReviewBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Excellent service!", actual.Content().String())
		assert.Equal(t, "Chika Eze", actual.ReviewerName().String())
		assert.Nil(t, actual.UserID())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum rating",
				mutate: func(b *builder.ReviewBuilder) { b.Rating = 0 },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "minimum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.Rating = 1 },
			},
			{
				name:   "maximum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.Rating = 5 },
			},
			{
				name:   "above maximum rating",
				mutate: func(b *builder.ReviewBuilder) { b.Rating = 6 },
				errIs:  review.ErrInvalidRating,
			},
		})
	})

	t.Run("content validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty content",
				mutate: func(b *builder.ReviewBuilder) { b.Content = "   " },
				errIs:  review.ErrEmptyContent,
			},
			{
				name:   "maximum length content",
				mutate: func(b *builder.ReviewBuilder) { b.Content = strings.Repeat("a", review.MaxContentLength) },
			},
			{
				name:   "content too long",
				mutate: func(b *builder.ReviewBuilder) { b.Content = strings.Repeat("a", review.MaxContentLength+1) },
				errIs:  review.ErrContentTooLong,
			},
		})
	})

	t.Run("reviewer name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty reviewer name",
				mutate: func(b *builder.ReviewBuilder) { b.ReviewerName = "" },
				errIs:  review.ErrEmptyReviewer,
			},
		})
	})
}
