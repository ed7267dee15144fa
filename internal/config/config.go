// Package config loads herodex configuration from defaults, an optional YAML
// file and HERODEX_* environment variables, and exposes it through a nil-safe
// wrapper around viper.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides: server.port is read from
// HERODEX_SERVER_PORT.
const EnvPrefix = "HERODEX"

// Defaults applied before the config file and environment.
var defaults = map[string]any{
	"server.host":             "0.0.0.0",
	"server.port":             8080,
	"server.read_timeout":     15 * time.Second,
	"server.write_timeout":    15 * time.Second,
	"server.idle_timeout":     60 * time.Second,
	"server.shutdown_timeout": 10 * time.Second,
	"server.images_dir":       "images",
	"catalog.page_size":       3,
	"catalog.path":            "",
	"metrics.enabled":         true,
	"swagger.enabled":         true,
	"mcp.enabled":             true,
	"log.development":         false,
}

// Settings is the typed form of the configuration tree.
type Settings struct {
	Server  ServerSettings  `mapstructure:"server"`
	Catalog CatalogSettings `mapstructure:"catalog"`
	Metrics Toggle          `mapstructure:"metrics"`
	Swagger Toggle          `mapstructure:"swagger"`
	MCP     Toggle          `mapstructure:"mcp"`
}

// ServerSettings configures the HTTP listener.
type ServerSettings struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	ImagesDir       string        `mapstructure:"images_dir"`
}

// Addr returns the host:port the HTTP server listens on.
func (s ServerSettings) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// CatalogSettings selects the dataset and its page size.
type CatalogSettings struct {
	PageSize int    `mapstructure:"page_size"`
	Path     string `mapstructure:"path"`
}

// Toggle switches an optional endpoint on or off.
type Toggle struct {
	Enabled bool `mapstructure:"enabled"`
}

// Config is a read-only view over a viper instance. A Config built from a nil
// viper returns zero values for every key.
type Config struct {
	v *viper.Viper
}

// New wraps v. v may be nil.
func New(v *viper.Viper) *Config {
	return &Config{v: v}
}

// Load reads configuration. path may be empty, in which case only defaults
// and environment variables apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := New(v)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if n := c.GetInt("catalog.page_size"); n < 1 {
		errs = append(errs, fmt.Errorf("catalog.page_size must be positive, got %d", n))
	}
	if p := c.GetInt("server.port"); p < 0 || p > 65535 {
		errs = append(errs, fmt.Errorf("server.port out of range: %d", p))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) GetString(key string) string {
	if c.v == nil {
		return ""
	}
	return c.v.GetString(key)
}

func (c *Config) GetInt(key string) int {
	if c.v == nil {
		return 0
	}
	return c.v.GetInt(key)
}

func (c *Config) GetBool(key string) bool {
	if c.v == nil {
		return false
	}
	return c.v.GetBool(key)
}

// Settings decodes the configuration into its typed form.
func (c *Config) Settings() (Settings, error) {
	var s Settings
	if err := c.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}
	return s, nil
}

// Unmarshal decodes the whole configuration into target using mapstructure
// tags.
func (c *Config) Unmarshal(target any) error {
	if c.v == nil {
		return nil
	}
	return c.v.Unmarshal(target)
}
