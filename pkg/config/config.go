package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wexbot/gowex/pkg/logger"
	"github.com/wexbot/gowex/pkg/wex"
)

// Config is the process configuration for the CLI tools. Values come from an
// optional YAML file with environment variables taking precedence.
type Config struct {
	Exchange struct {
		BaseURL   string `yaml:"base_url"`
		APIKey    string `yaml:"api_key"`
		APISecret string `yaml:"api_secret"`
		ProxyURL  string `yaml:"proxy_url"`
		TimeoutS  int    `yaml:"timeout_seconds"`
	} `yaml:"exchange"`
	Log struct {
		Level      string `yaml:"level"`
		OutputFile string `yaml:"output_file"`
		MaxSize    int    `yaml:"max_size"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAge     int    `yaml:"max_age"`
		Compress   bool   `yaml:"compress"`
	} `yaml:"log"`
}

// Load reads the YAML file at path, if it exists, then applies environment
// overrides: WEX_BASE_URL, WEX_API_KEY, WEX_API_SECRET, WEX_PROXY_URL,
// LOG_LEVEL, LOG_FILE.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// env-only configuration is fine
		default:
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg.Exchange.BaseURL, "WEX_BASE_URL")
	applyEnv(&cfg.Exchange.APIKey, "WEX_API_KEY")
	applyEnv(&cfg.Exchange.APISecret, "WEX_API_SECRET")
	applyEnv(&cfg.Exchange.ProxyURL, "WEX_PROXY_URL")
	applyEnv(&cfg.Log.Level, "LOG_LEVEL")
	applyEnv(&cfg.Log.OutputFile, "LOG_FILE")

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	return cfg, nil
}

func applyEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// RequireCredentials errors unless both API key and secret are configured.
// Public-only tools skip this check.
func (c *Config) RequireCredentials() error {
	if c.Exchange.APIKey == "" || c.Exchange.APISecret == "" {
		return fmt.Errorf("WEX_API_KEY and WEX_API_SECRET must be configured")
	}
	return nil
}

// ClientConfig converts to the exchange client configuration.
func (c *Config) ClientConfig() wex.Config {
	return wex.Config{
		BaseURL:   c.Exchange.BaseURL,
		APIKey:    c.Exchange.APIKey,
		APISecret: c.Exchange.APISecret,
		ProxyURL:  c.Exchange.ProxyURL,
		Timeout:   time.Duration(c.Exchange.TimeoutS) * time.Second,
	}
}

// LoggerConfig converts to the logging configuration.
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:      c.Log.Level,
		OutputFile: c.Log.OutputFile,
		MaxSize:    c.Log.MaxSize,
		MaxBackups: c.Log.MaxBackups,
		MaxAge:     c.Log.MaxAge,
		Compress:   c.Log.Compress,
	}
}
