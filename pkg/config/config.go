package config

import (
	"fmt"
	"os"
	"time"

	"QuoteBridge/pkg/util"

	"gopkg.in/yaml.v3"
)

// DefaultIntervals maps a requested period to the upstream chart interval.
// Loaded into Config.Upstream.Intervals when the YAML leaves it empty.
var DefaultIntervals = map[string]string{
	"1d":  "5m",
	"5d":  "15m",
	"1mo": "1d",
	"3mo": "1d",
	"6mo": "1d",
	"1y":  "1wk",
}

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Static struct {
		Root string `yaml:"root"`
	} `yaml:"static"`
	Upstream struct {
		BaseURL         string            `yaml:"base_url"`
		UserAgent       string            `yaml:"user_agent"`
		Timeout         time.Duration     `yaml:"timeout"`
		InsecureTLS     bool              `yaml:"insecure_tls"`
		DefaultPeriod   string            `yaml:"default_period"`
		DefaultInterval string            `yaml:"default_interval"`
		Intervals       map[string]string `yaml:"intervals"`
	} `yaml:"upstream"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		c.Static.Root = v
	}
	if v := os.Getenv("UPSTREAM_BASE_URL"); v != "" {
		c.Upstream.BaseURL = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Static.Root == "" {
		c.Static.Root = "."
	}
	if c.Upstream.BaseURL == "" {
		c.Upstream.BaseURL = "https://query1.finance.yahoo.com"
	}
	if c.Upstream.UserAgent == "" {
		c.Upstream.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	}
	if c.Upstream.Timeout == 0 {
		c.Upstream.Timeout = 10 * time.Second
	}
	if c.Upstream.DefaultPeriod == "" {
		c.Upstream.DefaultPeriod = "1d"
	}
	if c.Upstream.DefaultInterval == "" {
		c.Upstream.DefaultInterval = "1d"
	}
	if len(c.Upstream.Intervals) == 0 {
		c.Upstream.Intervals = make(map[string]string, len(DefaultIntervals))
		for k, v := range DefaultIntervals {
			c.Upstream.Intervals[k] = v
		}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Log.Output == "" {
		c.Log.Output = "stdout"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream.base_url is required")
	}
	if c.Static.Root == "" {
		return fmt.Errorf("static.root is required")
	}
	if len(c.Upstream.Intervals) == 0 {
		return fmt.Errorf("upstream.intervals cannot be empty")
	}
	return nil
}
