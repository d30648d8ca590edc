package http

import (
	"context"

	"trading-dashboard/config"
	"trading-dashboard/internal/service"
	"trading-dashboard/pkg/logger"
	"trading-dashboard/pkg/middleware"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HttpAPIHandler struct {
	cfg       *config.Config
	log       *logger.Logger
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
}

func NewHttpAPIHandler(ctx context.Context, cfg *config.Config, log *logger.Logger, echo *echo.Echo, validator *goValidator.Validate, service *service.Service) *HttpAPIHandler {
	return &HttpAPIHandler{
		cfg:       cfg,
		log:       log,
		echo:      echo,
		validator: validator,
		service:   service,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	h.echo.Use(echoMiddleware.Recover())
	h.echo.Use(echoMiddleware.RequestID())
	h.echo.Use(middleware.NewRequestLoggerMiddleware(h.log))

	h.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	base := h.echo.Group("/api")
	if h.cfg.API.RateLimitPerSecond > 0 {
		base.Use(middleware.NewRateLimiterMiddleware(h.cfg.API.RateLimitPerSecond, h.cfg.API.RateLimitBurst))
	}
	h.SetupAnalytics(base)
	h.SetupSnapshots(base)
}
