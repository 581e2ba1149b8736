package inspect

import (
	"log/slog"

	"github.com/0xalexb/hjarta-config/provider"

	"go.uber.org/fx"
)

// ModuleName is the Fx module name used by NewModule.
const ModuleName = "inspect"

type serverParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Config     Config
	Provider   *provider.Config
	Directory  provider.Directory
	Resolver   provider.Resolver
}

// NewModule creates an Fx module running the inspection server.
// It depends on the providers module for *provider.Config, provider.Directory
// and provider.Resolver, and provides the *Server.
// If any options are passed, the module supplies Config from those options.
// Otherwise, Config must be provided externally (e.g., via config.Section).
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...Option) fx.Option {
	var moduleOpts []fx.Option

	if len(opts) > 0 {
		var cfg Config

		for _, apply := range opts {
			apply(&cfg)
		}

		moduleOpts = append(moduleOpts, fx.Supply(cfg))
	}

	moduleOpts = append(moduleOpts,
		fx.Provide(newServer),
		fx.Invoke(func(*Server) {}),
	)

	return fx.Module(ModuleName, moduleOpts...)
}

func newServer(params serverParams) (*Server, error) {
	handler, err := NewHandler(params.Provider, params.Directory, params.Resolver)
	if err != nil {
		return nil, err
	}

	srv, err := NewServer(Wrap(handler), params.Config, func() {
		shutdownErr := params.Shutdowner.Shutdown()
		if shutdownErr != nil {
			slog.Error("failed to trigger shutdown", "error", shutdownErr)
		}
	})
	if err != nil {
		return nil, err
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: srv.Start,
		OnStop:  srv.Stop,
	})

	return srv, nil
}
