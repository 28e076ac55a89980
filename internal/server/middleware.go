package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wesleyorama2/stressd/internal/logging"
)

// RequestIDHeader carries the per-request identifier in both directions.
const RequestIDHeader = "X-Request-ID"

// newRouter returns a chi router carrying the request ID, access log and
// recovery middleware, in that order.
func newRouter(logger *zap.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(middleware.RequestLogger(&LogFormatter{Logger: logger}))
	r.Use(middleware.Recoverer)
	return r
}

// GetRequestID returns the request ID stored in ctx, or "".
func GetRequestID(ctx context.Context) string {
	return middleware.GetReqID(ctx)
}

// RequestIDMiddleware reuses the client's X-Request-ID or generates a UUID,
// echoes it on the response and stores it where middleware.GetReqID finds it.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, reqID)
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LogFormatter plugs zap into middleware.RequestLogger. Access records are
// written at debug level; panics caught by middleware.Recoverer at error.
type LogFormatter struct {
	Logger *zap.Logger
}

// NewLogEntry implements middleware.LogFormatter.
func (f *LogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &logEntry{
		logger: f.Logger.With(zap.String("requestID", GetRequestID(r.Context()))),
		method: r.Method,
		path:   r.URL.Path,
		remote: r.RemoteAddr,
	}
}

type logEntry struct {
	logger *zap.Logger
	method string
	path   string
	remote string
}

func (e *logEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	e.logger.Debug("HTTP request",
		zap.String("method", e.method),
		zap.String("path", e.path),
		zap.String("remoteAddr", e.remote),
		zap.Int("status", status),
		zap.Int("bytes", bytes),
		zap.Duration("duration", elapsed),
	)
}

func (e *logEntry) Panic(v interface{}, stack []byte) {
	e.logger.Error("Panic recovered",
		zap.String("error", fmt.Sprint(v)),
		zap.String("stack", string(stack)),
	)
}

// LoggerFrom returns the request-scoped logger, or a discard logger when
// the request did not pass through the access log middleware.
func LoggerFrom(r *http.Request) *zap.Logger {
	if entry, ok := middleware.GetLogEntry(r).(*logEntry); ok {
		return entry.logger
	}
	return logging.NewDiscardLogger()
}
