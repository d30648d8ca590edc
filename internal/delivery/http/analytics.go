package http

import (
	"net/http"

	"trading-dashboard/internal/analytics"
	"trading-dashboard/internal/dto"

	"github.com/labstack/echo/v4"
)

const noTradesMessage = "No closed trades in window"

// MetricsResponse is the metrics bundle with the ratios derived from it.
type MetricsResponse struct {
	*analytics.Metrics
	WinLossRatio   analytics.Ratio `json:"win_loss_ratio"`
	LossRate       float64         `json:"loss_rate"`
	LossStreakRisk string          `json:"loss_streak_risk"`
}

func (h *HttpAPIHandler) SetupAnalytics(base *echo.Group) {
	v1 := base.Group("/v1")
	{
		v1.GET("/deals", h.getDeals)
		v1.GET("/daily", h.getDaily)
		v1.GET("/monthly", h.getMonthly)
		v1.GET("/monthly-series", h.getMonthlySeries)
		v1.GET("/metrics", h.getMetrics)
		v1.GET("/drawdown", h.getDrawdown)
		v1.GET("/rating", h.getRating)
		v1.GET("/calendar", h.getCalendar)
		v1.GET("/overview", h.getOverview)
	}
}

func (h *HttpAPIHandler) getDeals(c echo.Context) error {
	w, resp := h.parseWindow(c)
	if resp != nil {
		return c.JSON(resp.Code, resp)
	}

	table, err := h.service.AnalyticsService.Deals(c.Request().Context(), w)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Deals retrieved", table))
}

func (h *HttpAPIHandler) getDaily(c echo.Context) error {
	w, resp := h.parseWindow(c)
	if resp != nil {
		return c.JSON(resp.Code, resp)
	}

	daily, err := h.service.AnalyticsService.Daily(c.Request().Context(), w)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Daily stats retrieved", daily))
}

func (h *HttpAPIHandler) getMonthly(c echo.Context) error {
	w, year, month, resp := h.parseMonth(c)
	if resp != nil {
		return c.JSON(resp.Code, resp)
	}

	stats, err := h.service.AnalyticsService.Monthly(c.Request().Context(), w, year, month)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Monthly stats retrieved", stats))
}

func (h *HttpAPIHandler) getMonthlySeries(c echo.Context) error {
	w, resp := h.parseWindow(c)
	if resp != nil {
		return c.JSON(resp.Code, resp)
	}

	series, err := h.service.AnalyticsService.MonthlySeries(c.Request().Context(), w)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Monthly series retrieved", series))
}

func (h *HttpAPIHandler) getMetrics(c echo.Context) error {
	w, resp := h.parseWindow(c)
	if resp != nil {
		return c.JSON(resp.Code, resp)
	}

	metrics, err := h.service.AnalyticsService.Metrics(c.Request().Context(), w)
	if err != nil {
		return h.errorResponse(c, err)
	}
	if metrics == nil {
		return c.JSON(http.StatusOK, dto.NewSuccessResponse(noTradesMessage, nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Metrics calculated", MetricsResponse{
		Metrics:        metrics,
		WinLossRatio:   metrics.WinLossRatio(),
		LossRate:       metrics.LossRate(),
		LossStreakRisk: analytics.LossStreakRisk(metrics.MaxConsecutiveLosses),
	}))
}

func (h *HttpAPIHandler) getDrawdown(c echo.Context) error {
	w, resp := h.parseWindow(c)
	if resp != nil {
		return c.JSON(resp.Code, resp)
	}

	summary, err := h.service.AnalyticsService.Drawdown(c.Request().Context(), w)
	if err != nil {
		return h.errorResponse(c, err)
	}
	if summary == nil {
		return c.JSON(http.StatusOK, dto.NewSuccessResponse(noTradesMessage, nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Drawdown calculated", summary))
}

func (h *HttpAPIHandler) getRating(c echo.Context) error {
	w, resp := h.parseWindow(c)
	if resp != nil {
		return c.JSON(resp.Code, resp)
	}

	rating, err := h.service.AnalyticsService.Rating(c.Request().Context(), w)
	if err != nil {
		return h.errorResponse(c, err)
	}
	if rating == nil {
		return c.JSON(http.StatusOK, dto.NewSuccessResponse(noTradesMessage, nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Rating calculated", rating))
}

func (h *HttpAPIHandler) getCalendar(c echo.Context) error {
	w, year, month, resp := h.parseMonth(c)
	if resp != nil {
		return c.JSON(resp.Code, resp)
	}

	cal, err := h.service.AnalyticsService.Calendar(c.Request().Context(), w, year, month)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Calendar built", cal))
}

func (h *HttpAPIHandler) getOverview(c echo.Context) error {
	overview, err := h.service.AnalyticsService.Overview(c.Request().Context())
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Account overview retrieved", overview))
}
