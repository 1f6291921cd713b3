package config

import "time"

const (
	DefaultConfigPath      = "airports.toml"
	DefaultListenAddr      = "127.0.0.1:8080"
	DefaultPageSize        = 10
	DefaultAccessLogFormat = "{{method}} {{path}} - {{status}} ({{duration}})"
)

type Config struct {
	// Server holds the HTTP listener settings.
	Server ServerConfig `toml:"server" json:"server"`
	// Directory holds the airport directory settings.
	Directory DirectoryConfig `toml:"directory" json:"directory"`
	// Log holds logging settings.
	Log LogConfig `toml:"log" json:"log"`

	absConfigFilePath string
}

type ServerConfig struct {
	// ListenAddr is the host:port the API binds to (default: 127.0.0.1:8080).
	ListenAddr string `toml:"listen_addr" json:"listen_addr" validate:"required,hostname_port"`
	// ReadTimeoutSec is the HTTP read timeout in seconds (default: 15).
	ReadTimeoutSec int `toml:"read_timeout_sec" json:"read_timeout_sec" validate:"gte=1"`
	// WriteTimeoutSec is the HTTP write timeout in seconds (default: 15).
	WriteTimeoutSec int `toml:"write_timeout_sec" json:"write_timeout_sec" validate:"gte=1"`
	// IdleTimeoutSec is the keep-alive idle timeout in seconds (default: 60).
	IdleTimeoutSec int `toml:"idle_timeout_sec" json:"idle_timeout_sec" validate:"gte=1"`
	// ShutdownTimeoutSec bounds graceful shutdown in seconds (default: 30).
	ShutdownTimeoutSec int `toml:"shutdown_timeout_sec" json:"shutdown_timeout_sec" validate:"gte=1"`
	// AccessLogFormat is the access log line template. Available variables: {{method}}, {{path}}, {{status}}, {{duration}}, {{request_id}}.
	AccessLogFormat string `toml:"access_log_format" json:"access_log_format" validate:"required,log_template"`
}

type DirectoryConfig struct {
	// SeedFile is a JSON or YAML airport dataset loaded at startup. Empty means the built-in dataset. Relative paths are resolved against the config file directory.
	SeedFile string `toml:"seed_file" json:"seed_file"`
	// DefaultPageSize is used by GET /airports when pageSize is absent (default: 10).
	DefaultPageSize int `toml:"default_page_size" json:"default_page_size" validate:"gte=1"`
}

type LogConfig struct {
	// Verbose enables debug logging.
	Verbose bool `toml:"verbose" json:"verbose"`
	// Format is "text" or "json" (default: text).
	Format string `toml:"format" json:"format" validate:"oneof=text json"`
}

func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSec) * time.Second
}

func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSec) * time.Second
}

func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutSec) * time.Second
}

func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSec) * time.Second
}
