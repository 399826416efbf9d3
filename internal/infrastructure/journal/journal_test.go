package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "journal.db"), "journal")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAppendAndRecent(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, store.Append(Entry{
			ID:        string(rune('a' + i)),
			ActorID:   1,
			Entity:    "task",
			Action:    "create",
			EntityID:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	entries, err := store.Recent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, int64(3), entries[0].EntityID)
	require.Equal(t, int64(2), entries[1].EntityID)

	size, err := store.Size()
	require.NoError(t, err)
	require.Equal(t, 3, size)
}

func TestPrune(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Append(Entry{
			ID:        string(rune('a' + i)),
			Entity:    "contact",
			Action:    "update",
			EntityID:  int64(i),
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	removed, err := store.Prune(base.Add(2 * time.Hour))
	require.NoError(t, err)
	require.Equal(t, 2, removed)

	size, err := store.Size()
	require.NoError(t, err)
	require.Equal(t, 3, size)
}
