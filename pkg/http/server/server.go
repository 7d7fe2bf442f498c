package http_server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const shutdownGrace = 10 * time.Second

// Config holds the listener settings resolved from viper by the caller.
type Config struct {
	Port    int
	Timeout time.Duration
}

// Server wraps net/http with context-driven graceful shutdown.
type Server struct {
	srv *http.Server
	ctx context.Context
}

func New(ctx context.Context, handler http.Handler, config Config) *Server {
	return &Server{
		ctx: ctx,
		srv: &http.Server{
			Addr:         fmt.Sprintf(":%d", config.Port),
			Handler:      handler,
			ReadTimeout:  config.Timeout,
			WriteTimeout: config.Timeout,
			IdleTimeout:  time.Minute,
		},
	}
}

// ListenAndServe serves until the context is cancelled, then drains
// in-flight requests within the shutdown grace period.
func (s *Server) ListenAndServe() error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-s.ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	}
}
