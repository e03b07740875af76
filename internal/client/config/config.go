package config

import "time"

// Config holds runtime settings for the userform CLI.
//
// Fields:
//   - APIBaseURL: scheme://host:port of the user API; the /api/user paths are appended to it.
//   - RequestTimeout: upper bound for a single API request.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:5000"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
