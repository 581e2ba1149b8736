package inspect

import "errors"

// DefaultAddress is the address the inspection server listens on when none is set.
const DefaultAddress = "127.0.0.1:8787"

var (
	// ErrEmptyAddress is returned when the address is empty.
	ErrEmptyAddress = errors.New("address must not be empty")
	// ErrListenFailed is returned when the server cannot listen on the configured address.
	ErrListenFailed = errors.New("failed to listen")
	// ErrShutdownFailed is returned when the server fails to shut down gracefully.
	ErrShutdownFailed = errors.New("shutdown failed")
	// ErrNilConfig is returned when no provider configuration is given.
	ErrNilConfig = errors.New("provider config must not be nil")
)

// Config holds the configuration of the inspection server.
type Config struct {
	Address string `json:"address" yaml:"address"`
}

// SetDefaults sets default values for the Config.
func (c *Config) SetDefaults() bool {
	if c.Address == "" {
		c.Address = DefaultAddress

		return true
	}

	return false
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Address == "" {
		return ErrEmptyAddress
	}

	return nil
}

// Option configures the inspection server.
type Option func(*Config)

// WithAddress sets the listen address, e.g. "127.0.0.1:0" for a random port.
func WithAddress(addr string) Option {
	return func(cfg *Config) {
		cfg.Address = addr
	}
}
