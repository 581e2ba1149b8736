package cli

import (
	"fmt"
	"io"
	"os"

	hjarta "github.com/0xalexb/hjarta-config"
	"github.com/0xalexb/hjarta-config/provider"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

type flags struct {
	manifest  string
	namespace string
	optional  bool
	logLevel  string
}

// settingsOptions turns the flags into provider settings.
func (f *flags) settingsOptions() []provider.SettingsOption {
	opts := []provider.SettingsOption{
		provider.WithManifest(f.manifest),
		provider.WithNamespace(f.namespace),
	}

	if f.optional {
		opts = append(opts, provider.WithOptionalManifest())
	}

	return opts
}

func (f *flags) settings() *provider.Settings {
	var settings provider.Settings

	for _, apply := range f.settingsOptions() {
		apply(&settings)
	}

	return &settings
}

// resolver is the chain used by every command: registered providers first,
// then file fragments.
//
//nolint:ireturn // commands only need the Resolver contract
func resolver() provider.Resolver {
	return provider.Resolvers{provider.DefaultRegistry(), provider.FileResolver{}}
}

// Run executes the command line and returns an exit code.
func Run() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		// cobra already printed the error
		return ExitFailure
	}

	return ExitSuccess
}

func newRootCmd() *cobra.Command {
	opts := &flags{}

	root := &cobra.Command{
		Use:           "hjarta-config",
		Short:         "Inspect aggregated provider configuration",
		Long:          "hjarta-config lists the providers declared by installed packages and prints their merged configuration.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&opts.manifest, "manifest", provider.DefaultManifest, "path of the package manifest")
	root.PersistentFlags().StringVar(&opts.namespace, "namespace", provider.DefaultNamespace, "extra section listing providers")
	root.PersistentFlags().BoolVar(&opts.optional, "optional", false, "treat a missing manifest as empty")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newListCmd(opts))
	root.AddCommand(newDumpCmd(opts))
	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print hjarta-config version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "hjarta-config version %s (config %s, compiled %s)\n",
				hjarta.Version, hjarta.ConfigVersion, hjarta.CompiledAt)
		},
	}
}
