package provider

import (
	"fmt"
	"log/slog"
	"sync"
)

// Config memoizes the aggregated provider configuration.
//
// The first Load lists the directory, invokes every provider and merges their
// fragments. Later loads return the stored result until Clear is called.
// A failed load stores nothing, so the next Load starts over.
// Config is safe for concurrent use.
type Config struct {
	directory Directory
	resolver  Resolver
	logger    *slog.Logger

	mu     sync.Mutex
	loaded bool
	merged Fragment
}

// Option configures a Config.
type Option func(*Config)

// WithLogger sets the logger used to report aggregation results.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates an empty Config reading identifiers from directory and
// resolving them through resolver.
func New(directory Directory, resolver Resolver, opts ...Option) *Config {
	cfg := &Config{
		directory: directory,
		resolver:  resolver,
		logger:    slog.Default(),
		mu:        sync.Mutex{},
		loaded:    false,
		merged:    nil,
	}

	for _, apply := range opts {
		apply(cfg)
	}

	return cfg
}

// Load returns the aggregated configuration, building it on first use.
// The returned fragment is a copy; changing it does not affect later loads.
func (c *Config) Load() (Fragment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		merged, err := c.aggregate()
		if err != nil {
			c.logger.Error("loading provider configs failed", "error", err)

			return nil, err
		}

		c.merged = merged
		c.loaded = true
	}

	return c.merged.Clone(), nil
}

// Clear drops the stored configuration. A load in progress completes first.
func (c *Config) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.merged = nil
	c.loaded = false
}

// Loaded reports whether a configuration is stored.
func (c *Config) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loaded
}

func (c *Config) aggregate() (Fragment, error) {
	var ids []string

	if c.directory != nil {
		listed, err := c.directory.Providers()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDirectory, err)
		}

		ids = listed
	}

	fragments, err := Invoke(ids, c.resolver)
	if err != nil {
		return nil, err
	}

	merged, err := Merge(fragments...)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("provider configs loaded",
		"listed", len(ids),
		"invoked", len(fragments),
		"keys", len(merged),
	)

	return merged, nil
}
