//go:build unit

package testutil

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

// RecordOf round-trips v through JSON into a plain map and applies muts in order,
// so tests can post bodies a typed builder cannot express.
func RecordOf(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))

	for _, mut := range muts {
		mut(m)
	}
	return m
}

// Set overrides a field; a nil value removes it.
func Set(key string, value any) func(map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
