package purefn

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// DefaultMaxSize is the capacity used when no size option is given.
const DefaultMaxSize = 128

// Option configures the table created for each decorated function.
type Option func(*config)

type config struct {
	maxSize     int
	unbounded   bool
	logger      *zap.Logger
	registerer  prometheus.Registerer
	metricsName string
}

func newConfig(opts []Option) config {
	cfg := config{maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMaxSize bounds the table to n entries, evicting the least recently
// used entry when full. n == 0 disables caching; negative n is treated as 0.
func WithMaxSize(n int) Option {
	return func(cfg *config) {
		cfg.maxSize = max(n, 0)
		cfg.unbounded = false
	}
}

// WithUnbounded removes the capacity limit.
func WithUnbounded() Option {
	return func(cfg *config) {
		cfg.unbounded = true
	}
}

// WithLogger sets the logger used for debug output. The default discards logs.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithMetrics exports hit, miss, eviction and size metrics labeled with name.
// If registerer is nil or name is empty, this option is ignored.
func WithMetrics(registerer prometheus.Registerer, name string) Option {
	return func(cfg *config) {
		if registerer != nil && name != "" {
			cfg.registerer = registerer
			cfg.metricsName = name
		}
	}
}
