// Package commands implements CLI command handlers for airports-endpoint.
//
// Each subcommand implements the Runner interface and is mounted on a cobra
// root command by NewRootCommand:
//   - Init(): Parse positional arguments and load configuration
//   - Run(): Execute the command
//   - Name(): Return the command name
//
// # Available Commands
//
//   - serve: Run the airport directory REST API until interrupted
//   - check: Validate configuration and the seed dataset
//   - config: Print the effective configuration as TOML
//
// # Example Usage
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	root := commands.NewRootCommand(commands.BuildInfo{Version: "1.0.0"})
//	if err := root.ExecuteContext(ctx); err != nil {
//	    log.Fatalf("%v", err)
//	}
package commands
