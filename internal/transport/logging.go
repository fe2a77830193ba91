// Package transport provides the http.RoundTripper the CLI and server hand to
// the Odesli client. It keeps logging and metrics out of the library itself.
package transport

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// redacted replaces secrets in logged URLs.
const redacted = "REDACTED"

// StatusTransportError is the status label reported when no response arrived.
const StatusTransportError = "error"

// Observer receives the outcome of every upstream request.
type Observer interface {
	ObserveUpstream(status string, duration time.Duration)
}

// LoggingTransport logs each upstream request at debug level and reports its
// duration to an optional Observer.
type LoggingTransport struct {
	base     http.RoundTripper
	logger   *zap.Logger
	observer Observer
}

// New wraps base, which defaults to http.DefaultTransport when nil. logger
// defaults to a no-op logger and observer may be nil.
func New(base http.RoundTripper, logger *zap.Logger, observer Observer) *LoggingTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingTransport{
		base:     base,
		logger:   logger,
		observer: observer,
	}
}

// RoundTrip implements http.RoundTripper.
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	target := RedactURL(req.URL)

	t.logger.Debug("Sending upstream request",
		zap.String("method", req.Method),
		zap.String("url", target))

	resp, err := t.base.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		t.observe(StatusTransportError, duration)
		t.logger.Debug("Upstream request failed",
			zap.String("url", target),
			zap.Duration("duration", duration),
			zap.Error(err))
		return nil, err
	}

	t.observe(strconv.Itoa(resp.StatusCode), duration)
	t.logger.Debug("Received upstream response",
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration))

	return resp, nil
}

func (t *LoggingTransport) observe(status string, duration time.Duration) {
	if t.observer != nil {
		t.observer.ObserveUpstream(status, duration)
	}
}

// RedactURL renders u with the API key masked.
func RedactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	query := u.Query()
	if !query.Has("key") {
		return u.String()
	}
	query.Set("key", redacted)

	clone := *u
	clone.RawQuery = query.Encode()
	return clone.String()
}
