package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/marthasimmons/airports-endpoint/src/internal/errors"
	"github.com/marthasimmons/airports-endpoint/src/internal/log"
	"github.com/marthasimmons/airports-endpoint/src/internal/utils"
)

const (
	EnvListenAddr = "AIRPORTS_LISTEN_ADDR"
	EnvSeedFile   = "AIRPORTS_SEED_FILE"
	EnvVerbose    = "AIRPORTS_VERBOSE"
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr:         DefaultListenAddr,
			ReadTimeoutSec:     15,
			WriteTimeoutSec:    15,
			IdleTimeoutSec:     60,
			ShutdownTimeoutSec: 30,
			AccessLogFormat:    DefaultAccessLogFormat,
		},
		Directory: DirectoryConfig{
			DefaultPageSize: DefaultPageSize,
		},
		Log: LogConfig{
			Format: "text",
		},
	}
}

// LoadConfig reads configPath over the defaults. When mustExist is false a
// missing file is not an error and the defaults are returned.
func LoadConfig(configPath string, mustExist bool) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, errors.NewConfigError("failed to get absolute path", err)
		} else {
			configFile = path
		}
	}

	config := Default()
	config.absConfigFilePath = configFile

	content, err := os.ReadFile(configFile)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) && !mustExist {
			log.Debugf("Configuration file not found, using defaults: %s", configFile)
			return config, nil
		}
		return nil, errors.NewConfigError("failed to read config file", err)
	}

	if err := toml.Unmarshal(content, config); err != nil {
		var derr *toml.DecodeError
		if stderrors.As(err, &derr) {
			log.Errorf("%s", derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, errors.NewConfigError(fmt.Sprintf("failed to parse config file at line %d, column %d", row, col), nil)
		}
		return nil, errors.NewConfigError("failed to parse config file", err)
	}

	log.Debugf("Configuration file path: %s", configFile)

	return config, nil
}

// ApplyEnv overrides file values with AIRPORTS_* environment variables.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvListenAddr); ok && v != "" {
		c.Server.ListenAddr = v
	}
	if v, ok := os.LookupEnv(EnvSeedFile); ok {
		c.Directory.SeedFile = v
	}
	if v, ok := os.LookupEnv(EnvVerbose); ok && v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return errors.NewConfigError(fmt.Sprintf("invalid %s value %q", EnvVerbose, v), err)
		}
		c.Log.Verbose = verbose
	}
	return nil
}

// GetConfigDir returns the directory relative paths are resolved against.
func (c *Config) GetConfigDir() string {
	if c.absConfigFilePath == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
		return "."
	}
	return filepath.Dir(c.absConfigFilePath)
}

// SeedPath returns the absolute seed file path, or "" for the built-in dataset.
func (c *Config) SeedPath() string {
	if c.Directory.SeedFile == "" {
		return ""
	}
	return utils.GetAbsolutePath(c.Directory.SeedFile, c.GetConfigDir())
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}
