// Package config handles loading and parsing application configuration.
// It supports two sources for the config file path (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// The config file is optional. When neither source provides a path the
// service falls back to the env-default values below, which bind the
// server to 0.0.0.0:8000 — so the binary runs with zero configuration.
package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// HTTPServer is embedded (not a pointer) so its fields are accessible
	// directly on Config:  cfg.HTTPServer.Addr  or after promotion cfg.Addr
	HTTPServer `yaml:"http_server"`
}

// HTTPServer holds settings specific to the HTTP server.
// Nested under http_server: in the YAML file.
type HTTPServer struct {
	// Addr is the TCP address the server listens on. The default binds
	// all interfaces on port 8000.
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-default:"0.0.0.0:8000"`
}

// MustLoad reads, validates, and returns the application config.
//
// The name "MustLoad" follows the Go convention that "Must" functions
// are allowed to fatal on failure. Callers do not need to check an
// error — if this function returns, the config is valid.
func MustLoad() *Config {
	var configPath string

	// Source 1: environment variable — the standard way to pass config
	// to a container.
	configPath = os.Getenv("CONFIG_PATH")

	// Source 2: command-line flag, handy when running locally:
	//   go run ./cmd/student-registry --config=config/local.yaml
	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	var cfg Config

	// No path from either source: run on env vars and defaults alone.
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err.Error())
		}
		return &cfg
	}

	// A path was given, so it must point at a real file — better to
	// crash at boot with a clear message than to silently fall back.
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	// cleanenv.ReadConfig reads the YAML file and populates the struct,
	// then applies any env:"..." overrides from the environment.
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return &cfg
}
