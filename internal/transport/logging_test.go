package transport

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingObserver struct {
	mu       sync.Mutex
	statuses []string
}

func (r *recordingObserver) ObserveUpstream(status string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, status)
}

func (r *recordingObserver) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.statuses...)
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("dial tcp: connection refused")
}

func TestRedactURL(t *testing.T) {
	tests := []struct {
		name     string
		rawURL   string
		expected string
	}{
		{
			name:     "key masked",
			rawURL:   "https://api.song.link/v1-alpha.1/links?key=secret&url=x",
			expected: "https://api.song.link/v1-alpha.1/links?key=REDACTED&url=x",
		},
		{
			name:     "no key",
			rawURL:   "https://api.song.link/v1-alpha.1/links?url=x",
			expected: "https://api.song.link/v1-alpha.1/links?url=x",
		},
		{
			name:     "no query",
			rawURL:   "https://api.song.link/",
			expected: "https://api.song.link/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.rawURL)
			if err != nil {
				t.Fatalf("url.Parse() error = %v", err)
			}
			if got := RedactURL(u); got != tt.expected {
				t.Errorf("RedactURL() = %q, want %q", got, tt.expected)
			}
		})
	}

	if got := RedactURL(nil); got != "" {
		t.Errorf("RedactURL(nil) = %q, want empty", got)
	}
}

func TestLoggingTransport_RoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	core, logs := observer.New(zapcore.DebugLevel)
	obs := &recordingObserver{}
	client := &http.Client{Transport: New(nil, zap.New(core), obs)}

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, server.URL+"/links?key=secret", http.NoBody)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	_ = resp.Body.Close()

	if got := obs.recorded(); len(got) != 1 || got[0] != "418" {
		t.Errorf("observed statuses = %v, want [418]", got)
	}

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d log entries, want 2", len(entries))
	}
	for _, entry := range entries {
		if strings.Contains(entry.ContextMap()["url"].(string), "secret") {
			t.Errorf("log entry %q leaks the API key", entry.Message)
		}
	}
	if status := entries[1].ContextMap()["status"]; status != int64(http.StatusTeapot) {
		t.Errorf("logged status = %v, want 418", status)
	}
}

func TestLoggingTransport_Error(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	obs := &recordingObserver{}
	transport := New(failingTransport{}, zap.New(core), obs)

	req := httptest.NewRequest(http.MethodGet, "http://example.invalid/links", http.NoBody)
	if _, err := transport.RoundTrip(req); err == nil {
		t.Fatal("RoundTrip() error = nil, want error")
	}

	if got := obs.recorded(); len(got) != 1 || got[0] != StatusTransportError {
		t.Errorf("observed statuses = %v, want [%s]", got, StatusTransportError)
	}
	if logs.FilterMessage("Upstream request failed").Len() != 1 {
		t.Error("expected one failure log entry")
	}
}

func TestLoggingTransport_NilObserver(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := &http.Client{Transport: New(nil, nil, nil)}
	req, _ := http.NewRequestWithContext(t.Context(), http.MethodGet, server.URL, http.NoBody)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	_ = resp.Body.Close()
}
