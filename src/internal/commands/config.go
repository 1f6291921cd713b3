package commands

import (
	"context"

	"github.com/marthasimmons/airports-endpoint/src/internal/config"
)

// ConfigCommand prints the effective configuration.
type ConfigCommand struct {
	ctx *AppContext
	cfg *config.Config
}

func CreateConfigCommand() Runner {
	return &ConfigCommand{}
}

func (c *ConfigCommand) Name() string {
	return "config"
}

func (c *ConfigCommand) Short() string {
	return "Print the effective configuration as TOML"
}

func (c *ConfigCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	cfg, err := loadAndValidateConfigOrFail(ctx)
	if err != nil {
		return err
	}
	c.cfg = cfg

	return nil
}

func (c *ConfigCommand) Run(_ context.Context) error {
	buf, err := c.cfg.SerializeConfig()
	if err != nil {
		return err
	}
	_, err = buf.WriteTo(c.ctx.Stdout)
	return err
}
