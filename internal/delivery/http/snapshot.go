package http

import (
	"net/http"
	"time"

	"trading-dashboard/internal/dto"
	"trading-dashboard/internal/model"
	"trading-dashboard/internal/service"
	"trading-dashboard/pkg/common"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupSnapshots(base *echo.Group) {
	snapshots := base.Group("/v1/snapshots")
	snapshots.POST("", h.createSnapshot)
	snapshots.GET("", h.listSnapshots)
}

func (h *HttpAPIHandler) createSnapshot(c echo.Context) error {
	w, resp := h.parseWindow(c)
	if resp != nil {
		return c.JSON(resp.Code, resp)
	}

	snapshot, err := h.service.AnalyticsService.Snapshot(c.Request().Context(), w, service.SourceAPI)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, dto.NewBaseResponse(http.StatusCreated, "Snapshot saved", snapshot))
}

func (h *HttpAPIHandler) listSnapshots(c echo.Context) error {
	req := new(dto.SnapshotListRequest)
	if resp := h.bind(c, req); resp != nil {
		return c.JSON(resp.Code, resp)
	}

	param := model.GetMetricsSnapshotParam{Limit: req.Limit}
	if req.From != "" {
		from, err := time.Parse(common.DateLayout, req.From)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
		}
		param.From = &from
	}

	snapshots, err := h.service.AnalyticsService.ListSnapshots(c.Request().Context(), param)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Snapshots retrieved", snapshots))
}
