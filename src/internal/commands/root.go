package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marthasimmons/airports-endpoint/src/internal/config"
)

// BuildInfo is stamped into the binary by ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root cobra command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	appCtx := &AppContext{}

	rootCmd := &cobra.Command{
		Use:     "airports-endpoint",
		Short:   "Airport directory REST API",
		Version: fmt.Sprintf("%s (Commit: %s, Date: %s)", info.Version, info.Commit, info.Date),
		Long: `airports-endpoint serves an in-memory directory of airports keyed by
ICAO code over a small REST API: paginated listing, create, fetch, partial
update and delete.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			appCtx.ConfigRequired = cmd.Flags().Changed("config")
			appCtx.Stdout = cmd.OutOrStdout()
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&appCtx.ConfigPath, "config", config.DefaultConfigPath, "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&appCtx.EnvFile, "env-file", ".env", "Path to a .env file with AIRPORTS_* overrides")
	rootCmd.PersistentFlags().BoolVarP(&appCtx.Verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.SetVersionTemplate("airports-endpoint {{.Version}}\n")

	for _, r := range []Runner{
		CreateServeCommand(),
		CreateCheckCommand(),
		CreateConfigCommand(),
	} {
		rootCmd.AddCommand(newCobraCommand(r, appCtx))
	}

	return rootCmd
}

// newCobraCommand mounts a Runner as a cobra subcommand.
func newCobraCommand(r Runner, appCtx *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   r.Name(),
		Short: r.Short(),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.Init(args, appCtx); err != nil {
				return err
			}
			return r.Run(cmd.Context())
		},
	}
	if fb, ok := r.(flagBinder); ok {
		fb.BindFlags(cmd.Flags())
	}
	return cmd
}
