package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/0xalexb/hjarta-config/provider"

	"github.com/spf13/cobra"
)

// Resolution states printed by list.
const (
	stateResolved = "resolved"
	stateSkipped  = "skipped"
)

func newListCmd(opts *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List provider identifiers from the manifest",
		Long:  "List prints every identifier the manifest declares, in load order, and whether a provider resolves for it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			directory, err := provider.NewSettingsDirectory(opts.settings())
			if err != nil {
				return err
			}

			ids, err := directory.Providers()
			if err != nil {
				return fmt.Errorf("listing providers: %w", err)
			}

			chain := resolver()
			out := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			for _, id := range ids {
				state := stateSkipped
				if _, ok := chain.Resolve(id); ok {
					state = stateResolved
				}

				_, _ = fmt.Fprintf(out, "%s\t%s\n", id, state)
			}

			return out.Flush()
		},
	}
}
