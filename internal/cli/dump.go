package cli

import (
	"fmt"

	hjarta "github.com/0xalexb/hjarta-config"
	"github.com/0xalexb/hjarta-config/provider"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newDumpCmd(opts *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the merged provider configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			merged, err := load(opts)
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(map[string]any(merged))
			if err != nil {
				return fmt.Errorf("encoding configuration: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}
}

// load aggregates the configuration through the same Fx module an
// application uses.
func load(opts *flags) (provider.Fragment, error) {
	var merged provider.Fragment

	app := hjarta.NewApp(
		hjarta.WithLogLevel(opts.logLevel),
		hjarta.WithLogFormat("text"),
		hjarta.WithManifestProviders(resolver(), opts.settingsOptions()...),
		hjarta.WithModules(fx.Populate(&merged)),
	)

	err := app.Start()
	if err != nil {
		return nil, err
	}

	err = app.Stop()
	if err != nil {
		return nil, err
	}

	return merged, nil
}
