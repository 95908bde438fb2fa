package store

import (
	"path/filepath"
	"testing"
)

// MustTempStore returns a Store backed by a temporary file, closed when the
// test finishes.
func MustTempStore(t testing.TB) DBStore {
	t.Helper()
	st, err := NewStore(filepath.Join(t.TempDir(), "store.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}
