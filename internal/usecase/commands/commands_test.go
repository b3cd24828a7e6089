//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"booking-intake/internal/domain/document"
	"booking-intake/internal/infra/filestore"
	"booking-intake/internal/pkg/clock"
	"booking-intake/tests/common/testutil"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

// sequentialIDs hands out predictable record ids.
func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func newTestStore(t *testing.T) *filestore.Store {
	t.Helper()
	return filestore.NewStore(filepath.Join(t.TempDir(), "data.json"), testutil.DiscardLogger())
}

func seed(t *testing.T, store *filestore.Store, mutate func(doc *document.Document)) {
	t.Helper()
	doc := document.New()
	mutate(doc)
	require.NoError(t, store.Save(context.Background(), doc))
}

func newClock() *clock.MockClock {
	return clock.NewMockClock(fixedNow)
}
