package commands

import (
	"context"
	"fmt"

	"github.com/marthasimmons/airports-endpoint/src/internal/airports"
	"github.com/marthasimmons/airports-endpoint/src/internal/config"
)

// CheckCommand validates the configuration and the seed dataset.
type CheckCommand struct {
	ctx *AppContext
	cfg *config.Config
}

func CreateCheckCommand() Runner {
	return &CheckCommand{}
}

func (c *CheckCommand) Name() string {
	return "check"
}

func (c *CheckCommand) Short() string {
	return "Validate configuration and seed dataset"
}

func (c *CheckCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	cfg, err := loadAndValidateConfigOrFail(ctx)
	if err != nil {
		return err
	}
	c.cfg = cfg

	return nil
}

func (c *CheckCommand) Run(_ context.Context) error {
	seed, err := airports.LoadSeed(c.cfg.SeedPath())
	if err != nil {
		return fmt.Errorf("failed to load seed: %w", err)
	}

	dir, err := airports.NewDirectory(seed.Airports)
	if err != nil {
		return fmt.Errorf("invalid seed %s: %w", seed.Source, err)
	}

	out := c.ctx.Stdout
	fmt.Fprintf(out, "Configuration OK\n")
	fmt.Fprintf(out, "Listen address: %s\n", c.cfg.Server.ListenAddr)
	fmt.Fprintf(out, "Seed: %s\n", seed.Source)
	fmt.Fprintf(out, "  airports: %d\n", dir.Len())
	fmt.Fprintf(out, "  size:     %d bytes\n", seed.Size)
	fmt.Fprintf(out, "  md5:      %s\n", seed.Checksum)

	return nil
}
