package config

import (
	"flag"
	"os"
	"strconv"
)

// Config holds the demo server's flag-driven configuration.
type Config struct {
	Port         int    `config:"port"`
	ReadTimeout  int    `config:"read.timeout"`
	WriteTimeout int    `config:"write.timeout"`
	Env          string `config:"env"`

	// RoutesFile, when set, points at a JSON route manifest
	// (router.LoadManifestJSON's format) loaded at startup instead of, or
	// alongside, routes registered in main.
	RoutesFile string `config:"routes.file"`
}

// New loads configuration from flags, then applies environment overrides.
func New() *Config {
	cfg := &Config{}

	flag.IntVar(&cfg.Port, "port", 8080, "HTTP server port")
	flag.IntVar(&cfg.ReadTimeout, "read-timeout", 10, "HTTP read timeout (seconds)")
	flag.IntVar(&cfg.WriteTimeout, "write-timeout", 30, "HTTP write timeout (seconds)")
	flag.StringVar(&cfg.Env, "env", "development", "Environment (development/production)")
	flag.StringVar(&cfg.RoutesFile, "routes", "", "path to a JSON route manifest")

	flag.Parse()

	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Port = p
		}
	}

	applyEnvOverrides(cfg)

	return cfg
}

// applyEnvOverrides lets FASTROUTER_-prefixed environment variables take
// final precedence over flags, using Manager's generic env-loading and
// reflection-based Unmarshal rather than hand-rolling a second parser for
// the same five fields.
func applyEnvOverrides(cfg *Config) {
	m := NewManager()
	m.LoadFromEnv("FASTROUTER")
	_ = m.Unmarshal("", cfg)
}
