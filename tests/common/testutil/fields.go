//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// a helper function for dynamically modifying map fields in tests
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// ToMap converts a request DTO to its JSON map form so individual fields
// can be mutated by validation test cases.
func ToMap(t *testing.T, dto any) map[string]any {
	t.Helper()

	raw, err := json.Marshal(dto)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}
