package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/kanau/tetracard/pkg/tetraio"
)

// Config holds the TOML configuration. Every field has a default; a missing
// config file is not an error.
type Config struct {
	API    APIConfig    `toml:"api"`
	Render RenderConfig `toml:"render"`
	Serve  ServeConfig  `toml:"serve"`
}

// APIConfig configures the stats API client.
type APIConfig struct {
	BaseURL         string `toml:"base_url"`
	CacheTTLSeconds int    `toml:"cache_ttl_seconds"`
}

// RenderConfig configures card output.
type RenderConfig struct {
	Format       string `toml:"format"`  // "png" or "jpeg"
	Quality      int    `toml:"quality"` // jpeg quality 1-100
	FontPath     string `toml:"font_path"`
	FontBoldPath string `toml:"font_bold_path"`
}

// ServeConfig configures the preview server.
type ServeConfig struct {
	Addr           string `toml:"addr"`
	CardTTLSeconds int    `toml:"card_ttl_seconds"`
}

func defaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:         tetraio.DefaultBaseURL,
			CacheTTLSeconds: 300,
		},
		Render: RenderConfig{
			Format:  "png",
			Quality: 90,
		},
		Serve: ServeConfig{
			Addr:           ":8080",
			CardTTLSeconds: 60,
		},
	}
}

// loadConfig reads the config file at path, or the default location when
// path is empty. Unset fields keep their defaults; a missing file at the
// default location is silently ignored, an explicit --config path must exist.
func (c *CLI) loadConfig() (*Config, error) {
	cfg := defaultConfig()

	path := c.configPath
	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); err != nil {
		if explicit {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
