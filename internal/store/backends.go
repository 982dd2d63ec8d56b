package store

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// NewBounded returns a table that keeps at most maxSize entries and evicts
// the least recently used one when a new key does not fit.
func NewBounded[V any](maxSize int) (*Table[V], error) {
	cache, err := lru.New[any, V](maxSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru table of size %d: %w", maxSize, err)
	}
	return &Table[V]{
		backend: bounded[V]{cache: cache},
		maxSize: maxSize,
	}, nil
}

// NewUnbounded returns a table that never evicts.
func NewUnbounded[V any]() *Table[V] {
	return &Table[V]{
		backend:   &unbounded[V]{items: make(map[any]V)},
		unbounded: true,
	}
}

// NewDisabled returns a table that stores nothing, so every Load is a miss.
func NewDisabled[V any]() *Table[V] {
	return &Table[V]{backend: disabled[V]{}}
}

type bounded[V any] struct {
	cache *lru.Cache[any, V]
}

func (b bounded[V]) get(key any) (V, bool) {
	return b.cache.Get(key)
}

func (b bounded[V]) add(key any, value V) bool {
	return b.cache.Add(key, value)
}

func (b bounded[V]) purge() {
	b.cache.Purge()
}

func (b bounded[V]) len() int {
	return b.cache.Len()
}

type unbounded[V any] struct {
	mu    sync.RWMutex
	items map[any]V
}

func (u *unbounded[V]) get(key any) (V, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	v, ok := u.items[key]
	return v, ok
}

func (u *unbounded[V]) add(key any, value V) bool {
	u.mu.Lock()
	u.items[key] = value
	u.mu.Unlock()
	return false
}

func (u *unbounded[V]) purge() {
	u.mu.Lock()
	clear(u.items)
	u.mu.Unlock()
}

func (u *unbounded[V]) len() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.items)
}

type disabled[V any] struct{}

func (disabled[V]) get(any) (V, bool) {
	var zero V
	return zero, false
}

func (disabled[V]) add(any, V) bool { return false }
func (disabled[V]) purge() {}
func (disabled[V]) len() int { return 0 }
