package core

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"odesli/internal/i18n"
	"odesli/pkg/odesli"
)

// Default configuration values.
const (
	DefaultServerHost   = "0.0.0.0"
	DefaultServerPort   = 8080
	DefaultTimeout      = 30 * time.Second
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 40 * time.Second
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "json"
)

type Config struct {
	Odesli OdesliConfig
	Server ServerConfig
	Log    LogConfig
	Output OutputConfig
}

type OdesliConfig struct {
	APIKey       string
	APIVersion   string
	BaseURL      string
	UserCountry  string
	SongIfSingle bool
	Timeout      time.Duration
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type OutputConfig struct {
	JSON     bool
	Language string
}

func DefaultConfig() *Config {
	return &Config{
		Odesli: OdesliConfig{
			APIVersion: odesli.DefaultAPIVersion,
			BaseURL:    odesli.BaseURL,
			Timeout:    DefaultTimeout,
		},
		Server: ServerConfig{
			Host:         DefaultServerHost,
			Port:         DefaultServerPort,
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Output: OutputConfig{
			Language: i18n.DefaultLanguage,
		},
	}
}

// Validate reports the first configuration value that cannot be used.
func (c *Config) Validate() error {
	if c.Odesli.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Odesli.Timeout)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", c.Server.Port)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level %q (debug, info, warn, error)", c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("unsupported log format %q (json, text)", c.Log.Format)
	}

	if !i18n.IsSupported(c.Output.Language) {
		return fmt.Errorf("unsupported language %q (%s)",
			c.Output.Language, strings.Join(i18n.GetSupportedLanguages(), ", "))
	}

	return nil
}

// NewClient builds an Odesli client from the configuration. transport may be
// nil to use http.DefaultTransport.
func NewClient(cfg *OdesliConfig, transport http.RoundTripper) (*odesli.Client, error) {
	httpClient := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: transport,
	}

	opts := []odesli.Option{
		odesli.WithHTTPClient(httpClient),
		odesli.WithSongIfSingle(cfg.SongIfSingle),
	}
	if cfg.APIKey != "" {
		opts = append(opts, odesli.WithAPIKey(cfg.APIKey))
	}
	if cfg.APIVersion != "" {
		opts = append(opts, odesli.WithAPIVersion(cfg.APIVersion))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, odesli.WithBaseURL(cfg.BaseURL))
	}
	if cfg.UserCountry != "" {
		opts = append(opts, odesli.WithUserCountry(cfg.UserCountry))
	}

	client, err := odesli.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Odesli client: %w", err)
	}
	return client, nil
}
