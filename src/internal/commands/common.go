package commands

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/marthasimmons/airports-endpoint/src/internal/config"
	"github.com/marthasimmons/airports-endpoint/src/internal/errors"
	"github.com/marthasimmons/airports-endpoint/src/internal/log"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run(ctx context.Context) error
	Name() string
	Short() string
}

// flagBinder is implemented by runners that take command-specific flags.
type flagBinder interface {
	BindFlags(fs *pflag.FlagSet)
}

type AppContext struct {
	ConfigPath string
	// ConfigRequired is set when the config path was given explicitly.
	ConfigRequired bool
	EnvFile        string
	Verbose        bool
	Stdout         io.Writer
}

// loadEnvFile loads KEY=VALUE pairs into the process environment. A missing
// file is not an error; variables already set are not overridden.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			log.Debugf("Env file not found, skipping: %s", path)
			return nil
		}
		return errors.NewConfigError(fmt.Sprintf("failed to load env file %s", path), err)
	}
	log.Debugf("Loaded environment from %s", path)
	return nil
}

// loadAndValidateConfigOrFail loads the env file and configuration, applies
// environment overrides and then the given command overrides, validates the
// result and configures logging.
func loadAndValidateConfigOrFail(ctx *AppContext, overrides ...func(*config.Config)) (*config.Config, error) {
	if err := loadEnvFile(ctx.EnvFile); err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(ctx.ConfigPath, ctx.ConfigRequired)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("failed to apply environment: %w", err)
	}

	for _, override := range overrides {
		override(cfg)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, err
	}

	log.SetFormat(cfg.Log.Format)
	log.SetVerbose(ctx.Verbose || cfg.Log.Verbose)

	return cfg, nil
}
