package purefn

import (
	"github.com/google/uuid"
	"github.com/on-the-ground/memo_ive_go/fingerprint"
	"github.com/on-the-ground/memo_ive_go/internal/keychain"
	"github.com/on-the-ground/memo_ive_go/internal/logging"
	"github.com/on-the-ground/memo_ive_go/internal/store"
	"go.uber.org/zap"
)

// memo is the table and bookkeeping shared by every decorated arity.
// The real call travels as a closure per invocation; nothing about a call
// is stored on the memo itself.
type memo[O any] struct {
	id          uuid.UUID
	fingerprint fingerprint.Func
	table       *store.Table[O]
	logger      *zap.Logger
	metrics     *cacheMetrics
}

func newMemo[O any](d Decorator) *memo[O] {
	fp := d.fingerprint
	if fp == nil {
		fp = fingerprint.Identity
	}
	id := uuid.New()
	logger := logging.OrNop(d.cfg.logger).With(zap.Stringer("cache_id", id))

	m := &memo[O]{
		id:          id,
		fingerprint: fp,
		table:       newTable[O](d.cfg),
		logger:      logger,
	}
	if d.cfg.registerer != nil {
		metrics, err := newCacheMetrics(d.cfg.registerer, d.cfg.metricsName)
		if err != nil {
			logger.Warn("metrics disabled", zap.String("name", d.cfg.metricsName), zap.Error(err))
		} else {
			m.metrics = metrics
		}
	}
	return m
}

func newTable[O any](cfg config) *store.Table[O] {
	switch {
	case cfg.unbounded:
		return store.NewUnbounded[O]()
	case cfg.maxSize == 0:
		return store.NewDisabled[O]()
	}
	table, err := store.NewBounded[O](cfg.maxSize)
	if err != nil {
		// maxSize is positive here
		panic(err)
	}
	return table
}

func (m *memo[O]) key(positional []any, keyword map[string]any) (any, error) {
	positionalFps := make([]any, len(positional))
	for i, arg := range positional {
		fp, err := m.fingerprint(arg)
		if err != nil {
			return nil, err
		}
		positionalFps[i] = fp
	}

	var keywordFps map[string]any
	if len(keyword) > 0 {
		keywordFps = make(map[string]any, len(keyword))
		for name, arg := range keyword {
			fp, err := m.fingerprint(arg)
			if err != nil {
				return nil, err
			}
			keywordFps[name] = fp
		}
	}

	return keychain.Build(positionalFps, keywordFps)
}

// call looks up the fingerprinted arguments and runs invoke on a miss.
// invoke must close over the original, unfingerprinted arguments.
func (m *memo[O]) call(positional []any, keyword map[string]any, invoke func() (O, error)) (O, error) {
	key, err := m.key(positional, keyword)
	if err != nil {
		var zero O
		return zero, err
	}

	if v, ok := m.table.Load(key); ok {
		m.metrics.recordHit()
		return v, nil
	}
	m.metrics.recordMiss()
	m.logger.Debug("cache miss")

	v, err := invoke()
	if err != nil {
		return v, err
	}

	if m.table.Store(key, v) {
		m.metrics.recordEviction()
		m.logger.Debug("evicted least recently used entry")
	}
	m.metrics.updateSize(m.table.Len())
	return v, nil
}

// CacheInfo reports the hit and miss counts, the current size and the capacity.
func (m *memo[O]) CacheInfo() Info {
	s := m.table.Stats()
	return Info{
		ID:        m.id,
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
		Size:      s.Size,
		MaxSize:   s.MaxSize,
		Unbounded: s.Unbounded,
	}
}

// CacheClear drops every entry and resets the counters.
func (m *memo[O]) CacheClear() {
	m.table.Purge()
	m.metrics.updateSize(0)
	m.logger.Debug("cache cleared")
}
