// Package testutil provides stores for tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mmynk/futebol/internal/storage/bunstore"
)

// NewSQLiteStore opens a store on a fresh SQLite file in a temporary
// directory and resets its schema. The store is closed when the test ends.
func NewSQLiteStore(t testing.TB) *bunstore.Store {
	t.Helper()

	url := "sqlite://" + filepath.Join(t.TempDir(), "futebol_test.db")
	return openAndReset(t, url)
}

func openAndReset(t testing.TB, url string) *bunstore.Store {
	t.Helper()
	ctx := context.Background()

	store, err := bunstore.Open(ctx, url)
	require.NoError(t, err, "open store")
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.ResetSchema(ctx), "reset schema")
	return store
}
