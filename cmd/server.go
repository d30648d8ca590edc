package cmd

import (
	"context"
	"fmt"
	"time"

	"trading-dashboard/internal/delivery/http"

	"go.uber.org/zap"
)

type HTTPServer struct {
	ctx     context.Context
	appDep  *AppDependency
	handler *http.HttpAPIHandler
}

func NewHTTPServer(ctx context.Context, appDep *AppDependency, handler *http.HttpAPIHandler) *HTTPServer {
	return &HTTPServer{
		ctx:     ctx,
		appDep:  appDep,
		handler: handler,
	}
}

func (s *HTTPServer) Start() error {
	s.appDep.log.Info("Starting HTTP server", zap.Int("port", s.appDep.cfg.API.Port))
	address := fmt.Sprintf(":%d", s.appDep.cfg.API.Port)

	s.handler.SetupRoutes()

	return s.appDep.echo.Start(address)
}

// Stop drains in-flight requests for up to ten seconds. The server context is
// usually cancelled by now, so the deadline starts from a fresh one.
func (s *HTTPServer) Stop() error {
	s.appDep.log.Info("Shutting down HTTP server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.appDep.echo.Shutdown(ctx); err != nil {
		s.appDep.log.Error("Error when stopping HTTP server", zap.Error(err))
		return err
	}
	s.appDep.log.Info("HTTP server stopped successfully")
	return nil
}
