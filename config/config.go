package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the process configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Catalog CatalogConfig `yaml:"catalog"`
	Search  SearchConfig  `yaml:"search"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// CatalogConfig points at the catalog workbook.
type CatalogConfig struct {
	Workbook string `yaml:"workbook"`
	Sheet    string `yaml:"sheet"`
}

// SearchConfig tunes query behavior.
type SearchConfig struct {
	DefaultLimit int `yaml:"default_limit"`
	SuggestCount int `yaml:"suggest_count"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:        ":8080",
			CORSOrigins: []string{"*"},
		},
		Catalog: CatalogConfig{
			Workbook: "Data_Lib.xlsx",
			Sheet:    "api",
		},
		Search: SearchConfig{
			DefaultLimit: 5,
			SuggestCount: 3,
		},
	}
}

// Load builds the configuration: defaults, then config.yml, then
// config.local.yml, then environment overrides. Missing files are skipped.
func Load() (Config, error) {
	cfg := Default()

	for _, name := range []string{"config.yml", "config.local.yml"} {
		if err := loadFile(name, &cfg); err != nil {
			return Config{}, err
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the service cannot run with.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("config: server.addr is required")
	}
	if c.Catalog.Workbook == "" {
		return fmt.Errorf("config: catalog.workbook is required")
	}
	if c.Search.DefaultLimit < 1 || c.Search.DefaultLimit > 20 {
		return fmt.Errorf("config: search.default_limit must be in [1,20], got %d", c.Search.DefaultLimit)
	}
	return nil
}

func loadFile(name string, cfg *Config) error {
	data, err := os.ReadFile(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", name, err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LIBAPI_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("LIBAPI_WORKBOOK"); v != "" {
		cfg.Catalog.Workbook = v
	}
	if v := os.Getenv("LIBAPI_SHEET"); v != "" {
		cfg.Catalog.Sheet = v
	}
}
