// Package http serves Odesli lookups over HTTP alongside health and metrics
// endpoints.
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"odesli/internal/core"
	"odesli/pkg/odesli"
)

const shutdownTimeout = 10 * time.Second

// RequestIDHeader carries the per-request ID on responses.
const RequestIDHeader = "X-Request-ID"

type Server struct {
	config  *core.ServerConfig
	logger  *zap.Logger
	server  *http.Server
	metrics *Metrics
}

// NewServer creates a server answering lookups with client. metrics should be
// the same instance observing client's transport.
func NewServer(config *core.ServerConfig, logger *zap.Logger, client *odesli.Client, metrics *Metrics) *Server {
	mux := setupRoutes(logger, client, metrics)
	handler := withRequestLogging(logger, metrics, mux)

	return &Server{
		config:  config,
		logger:  logger,
		server:  createHTTPServer(config, handler),
		metrics: metrics,
	}
}

func setupRoutes(logger *zap.Logger, client *odesli.Client, metrics *Metrics) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeStatus(w, logger, `{"status":"ok","service":"odesli"}`)
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		writeStatus(w, logger, `{"status":"ready","service":"odesli"}`)
	})

	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}))
	mux.Handle("GET /v1/links", linksHandler(logger, client, metrics))
	mux.HandleFunc("/", homeHandler(logger))

	return mux
}

func writeStatus(w http.ResponseWriter, logger *zap.Logger, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		logger.Debug("Failed to write status response", zap.Error(err))
	}
}

func createHTTPServer(config *core.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler:      handler,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	}
}

func homeHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(homePage)); err != nil {
			logger.Debug("Failed to write home page", zap.Error(err))
		}
	}
}

const homePage = `<!DOCTYPE html>
<html>
<head>
    <title>Odesli</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; }
        .header { color: #333; }
        .endpoint { margin: 10px 0; }
        .endpoint a { text-decoration: none; color: #0066cc; }
        .endpoint a:hover { text-decoration: underline; }
        code { background: #f4f4f4; padding: 2px 4px; }
    </style>
</head>
<body>
    <h1 class="header">🎵 Odesli</h1>
    <p>Cross-platform music link lookups via song.link</p>

    <h2>Endpoints</h2>
    <div class="endpoint">🔗 <code>/v1/links?url=&lt;streaming url&gt;</code> - Look up by URL</div>
    <div class="endpoint">🔎 <code>/v1/links?id=&lt;id&gt;&amp;platform=&lt;platform&gt;&amp;type=&lt;song|album&gt;</code> - Look up by ID</div>
    <div class="endpoint">📊 <a href="/metrics">Metrics</a> - Prometheus metrics</div>
    <div class="endpoint">💚 <a href="/healthz">Health</a> - Health check</div>
    <div class="endpoint">✅ <a href="/readyz">Ready</a> - Readiness check</div>
</body>
</html>`

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRequestLogging assigns a request ID, counts the request and logs it.
func withRequestLogging(logger *zap.Logger, metrics *Metrics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(withRequestID(r.Context(), requestID)))

		metrics.RecordRequest(routeLabel(r.URL.Path), strconv.Itoa(rec.status))
		logger.Debug("Handled HTTP request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}

// routeLabel bounds the path label to the served routes.
func routeLabel(path string) string {
	switch path {
	case "/", "/healthz", "/readyz", "/metrics", "/v1/links":
		return path
	default:
		return "other"
	}
}

type requestIDKey struct{}

func withRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func requestIDFrom(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDKey{}).(string)
	return requestID
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("Starting HTTP server",
		zap.String("addr", s.server.Addr))

	go func() {
		<-ctx.Done()
		s.logger.Info("Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Failed to shutdown HTTP server gracefully", zap.Error(err))
		}
	}()

	if err := s.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server failed: %w", err)
	}

	return nil
}
