package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/marthasimmons/airports-endpoint/src/internal/airports"
	"github.com/marthasimmons/airports-endpoint/src/internal/api"
	"github.com/marthasimmons/airports-endpoint/src/internal/config"
	"github.com/marthasimmons/airports-endpoint/src/internal/log"
)

// ServeCommand implements the serve command for running the HTTP API server.
type ServeCommand struct {
	ctx *AppContext
	cfg *config.Config
	dir *airports.Directory

	// Command-specific flags
	listenAddr string
}

// CreateServeCommand creates a new serve command.
func CreateServeCommand() Runner {
	return &ServeCommand{}
}

// Name returns the command name.
func (c *ServeCommand) Name() string {
	return "serve"
}

func (c *ServeCommand) Short() string {
	return "Run the airport directory REST API"
}

func (c *ServeCommand) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.listenAddr, "listen", "", "Address to bind the HTTP server (overrides server.listen_addr)")
}

// Init loads configuration and the seed dataset.
func (c *ServeCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	cfg, err := loadAndValidateConfigOrFail(ctx, func(cfg *config.Config) {
		if c.listenAddr != "" {
			cfg.Server.ListenAddr = c.listenAddr
		}
	})
	if err != nil {
		return err
	}
	c.cfg = cfg

	dir, err := loadDirectory(cfg)
	if err != nil {
		return err
	}
	c.dir = dir

	return nil
}

// Run starts the HTTP API server and blocks until ctx is cancelled.
func (c *ServeCommand) Run(ctx context.Context) error {
	router, err := api.NewRouter(c.dir, api.RouterOptions{
		DefaultPageSize: c.cfg.Directory.DefaultPageSize,
		AccessLogFormat: c.cfg.Server.AccessLogFormat,
	})
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	server := api.NewServer(c.cfg.Server, router)

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	go func() {
		serverErrors <- server.Start()
	}()

	// Block until we are cancelled or the server fails
	select {
	case err := <-serverErrors:
		if err != nil {
			return err
		}

	case <-ctx.Done():
		log.Infof("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), c.cfg.Server.ShutdownTimeout())
		defer cancel()

		if err := server.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		if err := <-serverErrors; err != nil {
			return err
		}

		log.Infof("Server stopped gracefully")
	}

	return nil
}

// loadDirectory builds the directory from the configured seed.
func loadDirectory(cfg *config.Config) (*airports.Directory, error) {
	seed, err := airports.LoadSeed(cfg.SeedPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load seed: %w", err)
	}

	dir, err := airports.NewDirectory(seed.Airports)
	if err != nil {
		return nil, fmt.Errorf("invalid seed %s: %w", seed.Source, err)
	}

	log.Module("seed").
		WithField("source", seed.Source).
		WithField("md5", seed.Checksum).
		Infof("Loaded %d airports", dir.Len())

	return dir, nil
}
