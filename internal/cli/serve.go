package cli

import (
	hjarta "github.com/0xalexb/hjarta-config"
	"github.com/0xalexb/hjarta-config/inspect"

	"github.com/spf13/cobra"
)

func newServeCmd(opts *flags) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the provider configuration over HTTP",
		Long:  "Serve loads the provider configuration and exposes it on an inspection endpoint until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			app := hjarta.NewApp(
				hjarta.WithLogLevel(opts.logLevel),
				hjarta.WithLogFormat("text"),
				hjarta.WithManifestProviders(resolver(), opts.settingsOptions()...),
				hjarta.WithInspector(inspect.WithAddress(address)),
			)

			// Run exits the process with status 1 if start-up fails.
			app.Run()

			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", inspect.DefaultAddress, "listen address of the inspection endpoint")

	return cmd
}
