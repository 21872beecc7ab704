package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/hoangNguyenDev3/WanderSphere/internal/observability"
)

// loggingTransport attaches a client-generated request id to every call
// and logs method, path, status and latency.
type loggingTransport struct {
	next http.RoundTripper
	log  *observability.Logger
}

func newLoggingTransport(next http.RoundTripper, log *observability.Logger) http.RoundTripper {
	return &loggingTransport{next: next, log: log}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := t.next.RoundTrip(req)
	latency := time.Since(start)

	fields := []any{
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Duration("latency", latency),
		slog.String("request_id", requestID),
	}

	if err != nil {
		fields = append(fields, slog.String("error", err.Error()))
		t.log.Error("request failed", fields...)
		return resp, err
	}

	fields = append(fields, slog.Int("status", resp.StatusCode))
	t.log.Debug("request completed", fields...)
	return resp, nil
}
