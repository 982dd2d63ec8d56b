package store_test

import (
	"testing"

	"github.com/on-the-ground/memo_ive_go/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBounded_BasicUsage(t *testing.T) {
	table, err := store.NewBounded[string](2)
	require.NoError(t, err)

	table.Store("a", "first")
	val, ok := table.Load("a")
	assert.True(t, ok)
	assert.Equal(t, "first", val)

	_, ok = table.Load("x")
	assert.False(t, ok)

	// overwrite existing
	assert.False(t, table.Store("a", "updated"))
	val, ok = table.Load("a")
	assert.True(t, ok)
	assert.Equal(t, "updated", val)

	stats := table.Stats()
	assert.Equal(t, uint64(2), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
	assert.Equal(t, 2, stats.MaxSize)
	assert.False(t, stats.Unbounded)
}

func TestBounded_EvictsLeastRecentlyUsed(t *testing.T) {
	table, err := store.NewBounded[int](2)
	require.NoError(t, err)

	assert.False(t, table.Store("k1", 1))
	assert.False(t, table.Store("k2", 2))

	// touch k1 so k2 becomes the oldest
	_, ok := table.Load("k1")
	require.True(t, ok)

	assert.True(t, table.Store("k3", 3))

	_, ok = table.Load("k2")
	assert.False(t, ok)
	_, ok = table.Load("k1")
	assert.True(t, ok)
	assert.Equal(t, uint64(1), table.Stats().Evictions)
	assert.Equal(t, 2, table.Len())
}

func TestBounded_RejectsNonPositiveSize(t *testing.T) {
	_, err := store.NewBounded[int](0)
	assert.Error(t, err)
}

func TestUnbounded_NeverEvicts(t *testing.T) {
	table := store.NewUnbounded[int]()
	for i := 0; i < 1000; i++ {
		assert.False(t, table.Store(i, i))
	}
	assert.Equal(t, 1000, table.Len())
	v, ok := table.Load(0)
	assert.True(t, ok)
	assert.Equal(t, 0, v)

	stats := table.Stats()
	assert.True(t, stats.Unbounded)
	assert.Equal(t, uint64(0), stats.Evictions)
}

func TestDisabled_AlwaysMisses(t *testing.T) {
	table := store.NewDisabled[int]()
	table.Store("a", 1)
	_, ok := table.Load("a")
	assert.False(t, ok)
	_, ok = table.Load("a")
	assert.False(t, ok)

	stats := table.Stats()
	assert.Equal(t, uint64(0), stats.Hits)
	assert.Equal(t, uint64(2), stats.Misses)
	assert.Equal(t, 0, stats.Size)
	assert.Equal(t, 0, stats.MaxSize)
}

func TestPurge_ResetsEntriesAndCounters(t *testing.T) {
	table, err := store.NewBounded[int](1)
	require.NoError(t, err)
	table.Store("a", 1)
	table.Store("b", 2)
	table.Load("b")
	table.Load("a")

	table.Purge()

	assert.Equal(t, store.Stats{MaxSize: 1}, table.Stats())
	_, ok := table.Load("b")
	assert.False(t, ok)
}
