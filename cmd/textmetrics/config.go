package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"
)

// Config is the full runtime configuration. Values resolve from the YAML
// file at CONFIG_PATH when one is set, otherwise from the environment,
// with the env-default tags as the final fallback.
type Config struct {
	Server   ServerConfig  `yaml:"server"`
	Fetch    FetchConfig   `yaml:"fetch"`
	Lexicons LexiconConfig `yaml:"lexicons"`
	Log      LogConfig     `yaml:"log"`
}

type ServerConfig struct {
	Host            string        `yaml:"host" env:"TEXTMETRICS_HOST" env-default:"0.0.0.0"`
	Port            int           `yaml:"port" env:"TEXTMETRICS_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"TEXTMETRICS_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"TEXTMETRICS_WRITE_TIMEOUT" env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"TEXTMETRICS_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type FetchConfig struct {
	Timeout   time.Duration `yaml:"timeout" env:"TEXTMETRICS_FETCH_TIMEOUT" env-default:"10s"`
	UserAgent string        `yaml:"user_agent" env:"TEXTMETRICS_USER_AGENT" env-default:"Mozilla/5.0"`
	MaxBodyMB int64         `yaml:"max_body_mb" env:"TEXTMETRICS_MAX_BODY_MB" env-default:"8"`
}

// LexiconConfig holds word-list file paths. Empty paths select the
// embedded defaults.
type LexiconConfig struct {
	Positive  string `yaml:"positive" env:"TEXTMETRICS_POSITIVE_WORDS"`
	Negative  string `yaml:"negative" env:"TEXTMETRICS_NEGATIVE_WORDS"`
	StopWords string `yaml:"stopwords" env:"TEXTMETRICS_STOPWORDS"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"TEXTMETRICS_LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"TEXTMETRICS_LOG_FORMAT" env-default:"console"`
}

// LoadConfig reads CONFIG_PATH when set, then lets the environment
// override.
func LoadConfig() (*Config, error) {
	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: stat %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Server.Port)
	}
	if c.Fetch.MaxBodyMB < 1 {
		return fmt.Errorf("config: max body %dMB out of range", c.Fetch.MaxBodyMB)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	return nil
}

// Addr returns the configured listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
