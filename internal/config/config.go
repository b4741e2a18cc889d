// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"shadowcost/core/output"
	"shadowcost/core/types"
	"shadowcost/internal/errors"
	"shadowcost/internal/logging"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "SHADOWCOST_"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" toml:"version"`

	// Building holds the parameters used when none are given
	Building types.BuildingParameters `json:"building" toml:"building"`

	// Output contains output configuration
	Output OutputConfig `json:"output" toml:"output"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server" toml:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" toml:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format" toml:"default_format"`

	output.Options
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr" toml:"addr"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version:  "1.0",
		Building: types.DefaultParameters(),
		Output: OutputConfig{
			DefaultFormat: string(output.FormatCLI),
			Options:       output.DefaultOptions(),
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a JSON or TOML file over the defaults.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Config("failed to read config file", err).WithContext("file", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, errors.Config("invalid TOML config", err).WithContext("file", path)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.Config("invalid JSON config", err).WithContext("file", path)
		}
	}

	return cfg, nil
}

// LoadEnv reads dotenv files into the process environment. Variables that
// are already set win. Missing files are skipped.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return errors.Config("failed to load env file", err).WithContext("file", f)
		}
	}
	return nil
}

// ApplyEnv overrides settings from SHADOWCOST_* environment variables
func (c *Config) ApplyEnv() {
	set := func(name string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	set("LOG_LEVEL", &c.Logging.Level)
	set("LOG_FORMAT", &c.Logging.Format)
	set("LOG_OUTPUT", &c.Logging.Output)
	set("FORMAT", &c.Output.DefaultFormat)
	set("CURRENCY", &c.Output.CurrencySymbol)
	set("ADDR", &c.Server.Addr)
	set("MATERIAL", &c.Building.Material)
}

// Save saves configuration to a file, as TOML when the extension says so
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	if strings.ToLower(filepath.Ext(path)) == ".toml" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return toml.NewEncoder(f).Encode(c)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
