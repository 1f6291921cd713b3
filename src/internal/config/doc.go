// Package config handles configuration file parsing and validation for the
// airport directory service.
//
// The configuration is a TOML file with three sections:
//
//	[server]
//	listen_addr = "127.0.0.1:8080"
//	access_log_format = "{{method}} {{path}} - {{status}} ({{duration}})"
//
//	[directory]
//	seed_file = "airports.json"
//	default_page_size = 10
//
//	[log]
//	verbose = false
//	format = "text"
//
// Every key is optional; missing keys keep the values from Default().
// AIRPORTS_LISTEN_ADDR, AIRPORTS_SEED_FILE and AIRPORTS_VERBOSE override the
// file after it is loaded (see ApplyEnv).
//
// # Example Usage
//
//	cfg, err := config.LoadConfig("/etc/airports.toml", true)
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatalf("%v", err)
//	}
package config
