package core

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"odesli/internal/i18n"
	"odesli/pkg/odesli"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Output.Language != i18n.DefaultLanguage {
		t.Errorf("Expected default language to be %s, got %s", i18n.DefaultLanguage, config.Output.Language)
	}

	if config.Odesli.APIVersion != odesli.DefaultAPIVersion {
		t.Errorf("Expected default API version %s, got %s", odesli.DefaultAPIVersion, config.Odesli.APIVersion)
	}

	if config.Odesli.BaseURL != odesli.BaseURL {
		t.Errorf("Expected default base URL %s, got %s", odesli.BaseURL, config.Odesli.BaseURL)
	}

	if config.Odesli.APIKey != "" {
		t.Errorf("Expected no default API key, got %s", config.Odesli.APIKey)
	}

	if err := config.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestConfigConstants(t *testing.T) {
	if DefaultTimeout <= 0 {
		t.Error("DefaultTimeout should be positive")
	}

	if DefaultWriteTimeout <= DefaultTimeout {
		t.Error("Write timeout should outlast the upstream timeout")
	}

	if DefaultServerPort <= 0 || DefaultServerPort > 65535 {
		t.Error("DefaultServerPort should be a valid port number")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"text format", func(c *Config) { c.Log.Format = "text" }, ""},
		{"uppercase level", func(c *Config) { c.Log.Level = "DEBUG" }, ""},
		{"bernese output", func(c *Config) { c.Output.Language = i18n.BerneseGermanMessages }, ""},
		{"negative timeout", func(c *Config) { c.Odesli.Timeout = -time.Second }, "timeout"},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server port"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "server port"},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }, "log level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log format"},
		{"bad language", func(c *Config) { c.Output.Language = "fr" }, "language"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(config)

			err := config.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewClient(t *testing.T) {
	queries := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries <- r.URL.RawQuery
		if r.URL.Path != "/v1-alpha.1/links" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"entityUniqueId":"X","userCountry":"CH","pageUrl":"https://song.link/x",` +
			`"linksByPlatform":{},"entitiesByUniqueId":{}}`))
	}))
	defer server.Close()

	cfg := DefaultConfig().Odesli
	cfg.BaseURL = server.URL
	cfg.APIKey = "secret"
	cfg.UserCountry = "ch"
	cfg.SongIfSingle = true

	client, err := NewClient(&cfg, nil)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	result, err := NewURLLookup("https://open.spotify.com/track/1").Do(t.Context(), client)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if result.PageURL != "https://song.link/x" {
		t.Errorf("PageURL = %q", result.PageURL)
	}

	gotQuery := <-queries
	for _, want := range []string{"key=secret", "userCountry=CH", "songIfSingle=true"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query %q missing %q", gotQuery, want)
		}
	}
}

func TestNewClient_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*OdesliConfig)
	}{
		{"bad base URL", func(c *OdesliConfig) { c.BaseURL = "ftp://example.com" }},
		{"bad country", func(c *OdesliConfig) { c.UserCountry = "ZZZ" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig().Odesli
			tt.modify(&cfg)
			if _, err := NewClient(&cfg, nil); err == nil {
				t.Error("NewClient() error = nil, want error")
			}
		})
	}
}
