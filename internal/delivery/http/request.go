package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"trading-dashboard/internal/analytics"
	"trading-dashboard/internal/dto"
	"trading-dashboard/internal/repository"
	"trading-dashboard/internal/service"
	"trading-dashboard/pkg/common"
	"trading-dashboard/pkg/logger"

	"github.com/labstack/echo/v4"
)

// bind reads query parameters into req and validates it. A non-nil result is
// the response to send back.
func (h *HttpAPIHandler) bind(c echo.Context, req interface{}) *dto.BaseResponse {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, req); err != nil {
		return dto.NewBadRequestResponse("invalid query parameters")
	}
	if err := h.validator.Struct(req); err != nil {
		return dto.NewBadRequestResponse(err.Error())
	}
	return nil
}

func (h *HttpAPIHandler) parseWindow(c echo.Context) (analytics.Window, *dto.BaseResponse) {
	req := new(dto.WindowRequest)
	if resp := h.bind(c, req); resp != nil {
		return analytics.Window{}, resp
	}
	w, err := h.resolveWindow(*req)
	if err != nil {
		return analytics.Window{}, dto.NewBadRequestResponse(err.Error())
	}
	return w, nil
}

func (h *HttpAPIHandler) parseMonth(c echo.Context) (analytics.Window, int, time.Month, *dto.BaseResponse) {
	req := new(dto.MonthRequest)
	if resp := h.bind(c, req); resp != nil {
		return analytics.Window{}, 0, 0, resp
	}
	w, err := h.resolveWindow(req.WindowRequest)
	if err != nil {
		return analytics.Window{}, 0, 0, dto.NewBadRequestResponse(err.Error())
	}
	year, month := resolveMonth(*req, w)
	return w, year, month, nil
}

// resolveWindow fills missing dates from the default lookback window.
func (h *HttpAPIHandler) resolveWindow(req dto.WindowRequest) (analytics.Window, error) {
	def := h.service.AnalyticsService.DefaultWindow()
	from, to := def.From, def.To

	var err error
	if req.From != "" {
		if from, err = time.Parse(common.DateLayout, req.From); err != nil {
			return analytics.Window{}, err
		}
	}
	if req.To != "" {
		if to, err = time.Parse(common.DateLayout, req.To); err != nil {
			return analytics.Window{}, err
		}
	}
	return analytics.NewWindow(from, to)
}

// resolveMonth defaults to the month the window ends in.
func resolveMonth(req dto.MonthRequest, window analytics.Window) (int, time.Month) {
	year, month := window.To.Year(), window.To.Month()
	if req.Year != 0 {
		year = req.Year
	}
	if req.Month != 0 {
		month = time.Month(req.Month)
	}
	return year, month
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, analytics.ErrInvalidWindow):
		return http.StatusBadRequest
	case errors.Is(err, analytics.ErrDataIntegrity):
		return http.StatusUnprocessableEntity
	case errors.Is(err, repository.ErrTerminalUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, service.ErrSnapshotsDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (h *HttpAPIHandler) errorResponse(c echo.Context, err error) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		h.log.ErrorContext(c.Request().Context(), "Unhandled request error", logger.ErrorField(err))
	}
	return c.JSON(code, dto.NewBaseResponse(code, err.Error(), nil))
}
