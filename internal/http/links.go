package http

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"odesli/internal/core"
	"odesli/pkg/odesli"
)

// Lookup outcomes, used as metric labels.
const (
	outcomeSuccess        = "success"
	outcomeInvalid        = "invalid"
	outcomeStatusError    = "status_error"
	outcomeParseError     = "parse_error"
	outcomeTransportError = "transport_error"
	outcomeError          = "error"
)

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

// linksHandler proxies GET /v1/links?url=… or ?id=…&platform=…&type=… to
// Odesli and answers with the parsed result.
func linksHandler(logger *zap.Logger, client *odesli.Client, metrics *Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := requestIDFrom(r.Context())

		lookup, err := lookupFromQuery(r.URL.Query())
		if err != nil {
			metrics.RecordLookup(modeOf(r.URL.Query()), outcomeInvalid)
			writeError(w, logger, http.StatusBadRequest, err.Error(), requestID)
			return
		}

		result, err := lookup.Do(r.Context(), client)
		if err != nil {
			status, outcome := classifyError(err)
			metrics.RecordLookup(lookup.Mode(), outcome)
			logger.Warn("Lookup failed",
				zap.String("request_id", requestID),
				zap.String("mode", lookup.Mode()),
				zap.String("outcome", outcome),
				zap.Error(err))

			var statusErr *odesli.StatusError
			if errors.As(err, &statusErr) && statusErr.Body != "" {
				writeRaw(w, logger, status, statusErr.Body)
				return
			}
			writeError(w, logger, status, err.Error(), requestID)
			return
		}

		metrics.RecordLookup(lookup.Mode(), outcomeSuccess)
		logger.Info("Lookup completed",
			zap.String("request_id", requestID),
			zap.String("mode", lookup.Mode()),
			zap.String("entity", result.EntityUniqueID),
			zap.Int("links", len(result.LinksByPlatform)),
			zap.Duration("duration", time.Since(start)))

		writeJSON(w, logger, http.StatusOK, result)
	}
}

func lookupFromQuery(query url.Values) (*core.Lookup, error) {
	rawURL := strings.TrimSpace(query.Get("url"))

	if id := strings.TrimSpace(query.Get("id")); id != "" {
		lookup, err := core.NewIDLookup(id, query.Get("platform"), query.Get("type"))
		if err != nil {
			return nil, err
		}
		lookup.URL = rawURL
		return lookup, lookup.Validate()
	}

	lookup := core.NewURLLookup(rawURL)
	return lookup, lookup.Validate()
}

func modeOf(query url.Values) string {
	if query.Get("id") != "" {
		return core.ModeID
	}
	return core.ModeURL
}

// classifyError maps a lookup error to the response status and metric outcome.
// Client errors reported by Odesli keep their status; everything else that
// went wrong upstream is a bad gateway, or a gateway timeout on deadlines.
func classifyError(err error) (int, string) {
	var (
		statusErr    *odesli.StatusError
		parseErr     *odesli.ParseError
		transportErr *odesli.TransportError
	)

	switch {
	case errors.As(err, &statusErr):
		if statusErr.StatusCode >= 400 && statusErr.StatusCode < 500 {
			return statusErr.StatusCode, outcomeStatusError
		}
		return http.StatusBadGateway, outcomeStatusError
	case errors.As(err, &parseErr):
		return http.StatusBadGateway, outcomeParseError
	case errors.As(err, &transportErr):
		if isTimeout(err) {
			return http.StatusGatewayTimeout, outcomeTransportError
		}
		return http.StatusBadGateway, outcomeTransportError
	default:
		return http.StatusInternalServerError, outcomeError
	}
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout())
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Debug("Failed to write JSON response", zap.Error(err))
	}
}

func writeRaw(w http.ResponseWriter, logger *zap.Logger, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		logger.Debug("Failed to write upstream body", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, logger *zap.Logger, status int, message, requestID string) {
	writeJSON(w, logger, status, errorResponse{Error: message, RequestID: requestID})
}
