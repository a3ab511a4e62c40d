package api

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/douglyuckling/movievis/pkg/layout"
	"github.com/douglyuckling/movievis/pkg/validation"
)

// Config holds the server settings. Timeouts are plain seconds so the YAML
// form stays readable without a custom duration decoder.
type Config struct {
	Host                string        `yaml:"host"`
	Port                int           `yaml:"port"`
	ReadTimeoutSeconds  int           `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int           `yaml:"write_timeout_seconds"`
	IdleTimeoutSeconds  int           `yaml:"idle_timeout_seconds"`
	LogLevel            string        `yaml:"log_level"`
	Layout              layout.Config `yaml:"layout"`
}

// DefaultServerConfig returns the settings the server runs with when no
// config file is given.
func DefaultServerConfig() Config {
	return Config{
		Host:                "0.0.0.0",
		Port:                8080,
		ReadTimeoutSeconds:  15,
		WriteTimeoutSeconds: 30,
		IdleTimeoutSeconds:  60,
		LogLevel:            "info",
		Layout:              layout.DefaultConfig(),
	}
}

// LoadConfig reads a YAML config file over the defaults. Fields absent from
// the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultServerConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultServerConfig()
	c.Host = validation.DefaultOrString(c.Host, defaults.Host)
	c.Port = validation.DefaultOrInt(c.Port, defaults.Port)
	c.ReadTimeoutSeconds = validation.DefaultOrInt(c.ReadTimeoutSeconds, defaults.ReadTimeoutSeconds)
	c.WriteTimeoutSeconds = validation.DefaultOrInt(c.WriteTimeoutSeconds, defaults.WriteTimeoutSeconds)
	c.IdleTimeoutSeconds = validation.DefaultOrInt(c.IdleTimeoutSeconds, defaults.IdleTimeoutSeconds)
	c.LogLevel = validation.DefaultOrString(c.LogLevel, defaults.LogLevel)
}

// Validate checks the server settings and the embedded layout calibration.
func (c Config) Validate() error {
	return validation.NewConfigValidator("ServerConfig").
		Required("Host", c.Host).
		RangeInt("Port", c.Port, 1, 65535).
		Positive("ReadTimeoutSeconds", c.ReadTimeoutSeconds).
		Positive("WriteTimeoutSeconds", c.WriteTimeoutSeconds).
		Positive("IdleTimeoutSeconds", c.IdleTimeoutSeconds).
		OneOf("LogLevel", c.LogLevel, []string{"debug", "info", "warn", "error"}).
		Custom("Layout", func() error {
			return validation.ValidateLayoutConfig(c.Layout)
		}).
		Validate()
}

// Addr returns the host:port the server listens on.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ReadTimeout returns the read timeout as a duration.
func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the write timeout as a duration.
func (c Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// IdleTimeout returns the idle timeout as a duration.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutSeconds) * time.Second
}
