package pure

import "go.uber.org/zap"

const (
	DefaultName   = "memo"
	DefaultShards = 16
)

// Config holds the settings of one memoized function.
type Config struct {
	Name       string
	Logger     *zap.Logger
	Concurrent bool
	Shards     int // only used when Concurrent is set
}

type Option func(*Config)

// WithName labels the memoized function in its log fields.
func WithName(name string) Option {
	return func(c *Config) { c.Name = name }
}

// WithLogger emits debug logs for hits, misses, failed computations and rejected keys.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

// WithConcurrentAccess makes the memoized function safe for concurrent use.
// The table is split into shards, and concurrent first calls with the same
// arguments share a single computation.
func WithConcurrentAccess(shards int) Option {
	return func(c *Config) {
		c.Concurrent = true
		c.Shards = shards
	}
}

func NewConfig(opts ...Option) Config {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}
	if c.Name == "" {
		c.Name = DefaultName
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if c.Shards <= 0 {
		c.Shards = DefaultShards
	}
	return c
}
