package provider

import (
	"context"
	"fmt"
	"log/slog"

	filefetcher "github.com/0xalexb/hjarta-config/config/fetcher/file"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"

	"go.uber.org/fx"
)

// ModuleName is the Fx module name used by NewModule and NewManifestModule.
const ModuleName = "providers"

type configParams struct {
	fx.In

	Directory Directory
	Logger    *slog.Logger `optional:"true"`
}

// NewModule creates an Fx module owning a single *Config for the application.
//
// The module provides *Config, the aggregated Fragment, the Directory and the
// Resolver in use. The configuration
// is loaded when the application starts, so a failing provider fails start-up,
// and cleared when it stops. A nil resolver means DefaultRegistry.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(directory Directory, resolver Resolver) fx.Option {
	if directory == nil {
		return fx.Error(ErrNilDirectory)
	}

	return fx.Module(ModuleName,
		fx.Provide(func() Directory { return directory }),
		configOptions(resolver),
	)
}

// NewManifestModule is like NewModule but discovers providers from a package
// manifest described by *Settings.
// If any options are passed, the module supplies *Settings from those options.
// Otherwise *Settings must be provided externally (e.g., via config.Section).
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewManifestModule(resolver Resolver, opts ...SettingsOption) fx.Option {
	var moduleOpts []fx.Option

	if len(opts) > 0 {
		var settings Settings

		for _, apply := range opts {
			apply(&settings)
		}

		moduleOpts = append(moduleOpts, fx.Supply(&settings))
	}

	moduleOpts = append(moduleOpts,
		fx.Provide(NewSettingsDirectory),
		configOptions(resolver),
	)

	return fx.Module(ModuleName, moduleOpts...)
}

// NewSettingsDirectory builds a ManifestDirectory from settings, applying
// defaults and validation first.
//
//nolint:ireturn // the Fx graph is keyed by the Directory interface
func NewSettingsDirectory(settings *Settings) (Directory, error) {
	settings.SetDefaults()

	err := settings.Validate()
	if err != nil {
		return nil, fmt.Errorf("provider settings: %w", err)
	}

	newFetcher := filefetcher.NewFetcher
	if settings.Optional {
		newFetcher = filefetcher.NewOptionalFetcher
	}

	fetcher, err := newFetcher(settings.Manifest)()
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}

	return NewManifestDirectory(fetcher, yamlparser.NewParser(), settings.Namespace), nil
}

//nolint:ireturn // fx.Option is the standard return type for Fx modules
func configOptions(resolver Resolver) fx.Option {
	if resolver == nil {
		resolver = DefaultRegistry()
	}

	return fx.Options(
		fx.Provide(func() Resolver { return resolver }),
		fx.Provide(func(params configParams) *Config {
			return New(params.Directory, resolver, WithLogger(params.Logger))
		}),
		fx.Provide(func(cfg *Config) (Fragment, error) {
			return cfg.Load()
		}),
		fx.Invoke(func(lifecycle fx.Lifecycle, cfg *Config) {
			lifecycle.Append(fx.Hook{
				OnStart: func(context.Context) error {
					_, err := cfg.Load()

					return err
				},
				OnStop: func(context.Context) error {
					cfg.Clear()

					return nil
				},
			})
		}),
	)
}
