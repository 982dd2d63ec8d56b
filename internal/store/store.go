// Package store holds the memo tables behind a decorated function.
//
// A Table counts hits, misses and evictions on top of one of three backends:
// a bounded least-recently-used list (hashicorp/golang-lru), an unbounded map,
// or a disabled table that never keeps anything.
package store

import (
	"sync/atomic"
)

type backend[V any] interface {
	get(key any) (V, bool)
	add(key any, value V) (evicted bool)
	purge()
	len() int
}

// Stats is a snapshot of a Table.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Size      int
	MaxSize   int
	Unbounded bool
}

// Table is a memo table keyed by comparable values.
// Keys must be comparable; callers check this before Load or Store.
type Table[V any] struct {
	backend   backend[V]
	maxSize   int
	unbounded bool

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// Load returns the value stored for key and records a hit or a miss.
func (t *Table[V]) Load(key any) (V, bool) {
	v, ok := t.backend.get(key)
	if ok {
		t.hits.Add(1)
	} else {
		t.misses.Add(1)
	}
	return v, ok
}

// Store inserts value for key. It reports whether the least recently used
// entry was evicted to make room.
func (t *Table[V]) Store(key any, value V) bool {
	evicted := t.backend.add(key, value)
	if evicted {
		t.evictions.Add(1)
	}
	return evicted
}

// Purge drops every entry and resets the counters.
func (t *Table[V]) Purge() {
	t.backend.purge()
	t.hits.Store(0)
	t.misses.Store(0)
	t.evictions.Store(0)
}

func (t *Table[V]) Len() int {
	return t.backend.len()
}

func (t *Table[V]) Stats() Stats {
	return Stats{
		Hits:      t.hits.Load(),
		Misses:    t.misses.Load(),
		Evictions: t.evictions.Load(),
		Size:      t.backend.len(),
		MaxSize:   t.maxSize,
		Unbounded: t.unbounded,
	}
}
