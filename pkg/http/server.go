package http

import (
	"context"

	http_router "campus-nav/pkg/http/http-router"
	"campus-nav/pkg/http/http-router/controllers"
	http_server "campus-nav/pkg/http/server"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger

	g *errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,

	navigationService controllers.NavigationService,

) (*Server, error) {
	viper.SetDefault("API_PORT", 6060)

	viper.SetDefault("API_TIMEOUT", "30s")

	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}

	server := http_router.NewAPI(log)

	s.g = &errgroup.Group{}

	s.g.Go(func() error {
		return server.Run(
			ctx, config, log, navigationService,
		)
	})

	return s, nil
}

// Wait blocks until the API goroutine exits, which happens when the
// bootstrap context is cancelled or the listener fails.
func (s *Server) Wait() error {
	return s.g.Wait()
}
