package config

import "time"

// Config holds runtime settings for the qprdesk client.
//
// Fields:
//   - ServerBaseURL: base URL of the reporting backend, scheme included.
//   - RequestTimeout: per-request timeout for backend calls.
//   - StatePath: location of the local hint/state file; empty means the
//     per-user default under the OS config directory.
type Config struct {
	ServerBaseURL  string
	StatePath      string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 10 * time.Second
	c.StatePath = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
