// Package server serves the two stressd routes and owns the SIGTERM
// handler.
package server

import (
	"fmt"
	"net"
	"net/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wesleyorama2/stressd/internal/config"
	"github.com/wesleyorama2/stressd/internal/logging"
	"github.com/wesleyorama2/stressd/internal/output"
)

// Routes lists the endpoints in registration order.
var Routes = []output.Route{
	{Method: http.MethodGet, Path: "/", Description: "server info"},
	{Method: http.MethodGet, Path: "/stress", Description: "burns CPU, then answers"},
}

// Server is the stressd HTTP server.
type Server struct {
	cfg        config.ServerConfig
	logger     *zap.Logger
	httpServer *http.Server
}

// New builds a Server for cfg. A nil logger discards everything.
func New(cfg config.ServerConfig, logger *zap.Logger) *Server {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	// NewStdLogAt only rejects levels zap does not define.
	errorLog, _ := zap.NewStdLogAt(logger.Named("http"), zapcore.WarnLevel)

	s := &Server{cfg: cfg, logger: logger}
	s.httpServer = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout.GetDuration(config.DefaultReadHeaderTimeout),
		IdleTimeout:       cfg.IdleTimeout.GetDuration(config.DefaultIdleTimeout),
		ErrorLog:          errorLog,
	}
	return s
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	r := newRouter(s.logger)
	r.Get("/", IndexHandler)
	r.Get("/stress", StressHandler)
	return r
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Listen opens the TCP listener for the configured address.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return ln, nil
}

// Serve serves on ln until the listener fails or the process exits.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("Server listening", zap.String("addr", ln.Addr().String()))
	return s.httpServer.Serve(ln)
}
