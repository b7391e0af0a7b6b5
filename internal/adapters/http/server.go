// Package http serves the rastro API over HTTP using gin.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/rastro/internal/adapters/http/dto"
	"github.com/jsamuelsen/rastro/internal/platform/config"
)

// Server owns the gin engine and the http.Server in front of it.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	config     *config.ServerConfig
	logger     *slog.Logger

	mu       sync.Mutex
	listener net.Listener
}

// New builds a server for cfg. Routes are added to Engine before Start.
func New(cfg *config.ServerConfig, logger *slog.Logger) *Server {
	engine := gin.New()
	engine.Use(maxBodySize(cfg.MaxRequestSize))

	return &Server{
		engine: engine,
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:      engine,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		config: cfg,
		logger: logger,
	}
}

// Engine returns the gin engine for route registration.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Config returns the server configuration.
func (s *Server) Config() *config.ServerConfig {
	return s.config
}

// Start binds the listen address and serves in the background. Bind
// errors are returned directly; later serve errors arrive on the channel,
// which is closed once the server stops.
func (s *Server) Start() (<-chan error, error) {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", s.httpServer.Addr, err)
	}

	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	s.logger.Info("HTTP server listening",
		slog.String("addr", ln.Addr().String()),
		slog.Duration("read_timeout", s.config.ReadTimeout),
		slog.Duration("write_timeout", s.config.WriteTimeout),
	)

	errCh := make(chan error, 1)

	go func() {
		defer close(errCh)

		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	return errCh, nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	s.logger.Info("HTTP server stopped")

	return nil
}

// Addr returns the bound address once started, so port 0 resolves to the
// real port, and the configured address before that.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}

	return s.httpServer.Addr
}

// maxBodySize rejects declared bodies over maxBytes with 413 and caps the
// rest while they are read.
func maxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBytes {
			abort(c, dto.ErrorCodeTooLarge, fmt.Sprintf("request body exceeds %d bytes", maxBytes))

			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
