//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursorRoundTrip(t *testing.T) {
	id := uuid.New()
	createdAt := time.Date(2026, 2, 14, 9, 30, 0, 123456000, time.UTC)

	encoded := queries.EncodeAfterCursor(createdAt, id)

	decodedTime, decodedID, err := queries.DecodeAfterCursor(encoded)
	require.NoError(t, err)
	assert.Equal(t, createdAt.UnixMicro(), decodedTime.UnixMicro())
	assert.Equal(t, id, decodedID)
}

func TestDecodeAfterCursorErrors(t *testing.T) {
	cases := []struct {
		name   string
		cursor string
	}{
		{name: "empty cursor", cursor: ""},
		{name: "not base64", cursor: "!!!not-base64!!!"},
		{
			name:   "wrong version prefix",
			cursor: base64.URLEncoding.EncodeToString([]byte("v2:123-" + uuid.NewString())),
		},
		{
			name:   "missing separator",
			cursor: base64.URLEncoding.EncodeToString([]byte("v1:123456789")),
		},
		{
			name:   "bad timestamp",
			cursor: base64.URLEncoding.EncodeToString([]byte("v1:notanumber-" + uuid.NewString())),
		},
		{
			name:   "bad uuid",
			cursor: base64.URLEncoding.EncodeToString([]byte("v1:123456-not-a-uuid")),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tc.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 20, queries.ValidateLimit(-5))
	assert.Equal(t, 1, queries.ValidateLimit(1))
	assert.Equal(t, 200, queries.ValidateLimit(200))
	assert.Equal(t, 200, queries.ValidateLimit(1000))
}
