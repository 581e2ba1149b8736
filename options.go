package hjarta

import (
	"github.com/0xalexb/hjarta-config/inspect"
	"github.com/0xalexb/hjarta-config/provider"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithProviders adds the provider configuration module reading identifiers
// from directory. The aggregated provider.Fragment and its *provider.Config
// become available for injection; a nil resolver means provider.DefaultRegistry.
func WithProviders(directory provider.Directory, resolver provider.Resolver) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, provider.NewModule(directory, resolver))
	}
}

// WithManifestProviders adds the provider configuration module discovering
// identifiers from a package manifest.
// When options are provided (e.g., provider.WithManifest), *provider.Settings
// is supplied to DI automatically; otherwise it must be provided by another module.
func WithManifestProviders(resolver provider.Resolver, opts ...provider.SettingsOption) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, provider.NewManifestModule(resolver, opts...))
	}
}

// WithInspector adds the HTTP inspection server for the provider configuration.
// It requires WithProviders or WithManifestProviders.
// When options are provided (e.g., inspect.WithAddress), inspect.Config is
// supplied to DI automatically.
func WithInspector(opts ...inspect.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, inspect.NewModule(opts...))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log output format, "json" (default) or "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}
