package config

import "time"

// Config holds runtime settings for the exactauth CLI client.
//
// TLSCAFile, when set, switches the connection to TLS and trusts the given
// PEM bundle.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	TLSCAFile          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 5 * time.Second
	c.TLSCAFile = ""
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
