package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"trading-dashboard/config"
	"trading-dashboard/internal/dto"
	"trading-dashboard/internal/model"
	"trading-dashboard/pkg/httpclient"
	"trading-dashboard/pkg/logger"
	"trading-dashboard/pkg/monitoring"

	"golang.org/x/time/rate"
)

// ErrTerminalUnavailable wraps every failure to get an answer from the
// terminal bridge: transport errors and non-OK statuses.
var ErrTerminalUnavailable = errors.New("terminal unavailable")

// DealFeed is the source of trading history and live account state.
type DealFeed interface {
	// GetDeals returns the raw deal history between from and to. A window
	// without history yields an empty slice.
	GetDeals(ctx context.Context, from, to time.Time) ([]dto.TerminalDeal, error)
	GetPositions(ctx context.Context) ([]model.Position, error)
	GetAccount(ctx context.Context) (*model.AccountInfo, error)
}

type terminalRepository struct {
	httpClient     httpclient.HTTPClient
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

// NewTerminalRepository talks to the HTTP bridge in front of the trading
// terminal.
func NewTerminalRepository(cfg *config.Config, log *logger.Logger) DealFeed {
	secondsPerRequest := time.Minute / time.Duration(cfg.Terminal.MaxRequestPerMin)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &terminalRepository{
		httpClient:     httpclient.New(cfg.Terminal.BaseURL, cfg.Terminal.Timeout, cfg.Terminal.Token),
		logger:         log,
		requestLimiter: requestLimiter,
	}
}

func (r *terminalRepository) GetDeals(ctx context.Context, from, to time.Time) ([]dto.TerminalDeal, error) {
	var result dto.TerminalDealsResponse
	err := r.get(ctx, "/history/deals", map[string]string{
		"from": strconv.FormatInt(from.Unix(), 10),
		"to":   strconv.FormatInt(to.Unix(), 10),
	}, &result)
	if err != nil {
		return nil, err
	}

	if result.Deals == nil {
		return []dto.TerminalDeal{}, nil
	}
	return result.Deals, nil
}

func (r *terminalRepository) GetPositions(ctx context.Context) ([]model.Position, error) {
	var result dto.TerminalPositionsResponse
	if err := r.get(ctx, "/positions", nil, &result); err != nil {
		return nil, err
	}

	positions := make([]model.Position, 0, len(result.Positions))
	for _, p := range result.Positions {
		positions = append(positions, model.Position{
			Ticket:    p.Ticket,
			Symbol:    p.Symbol,
			Time:      time.Unix(p.Time, 0).UTC(),
			Side:      model.SideFromCode(p.Type),
			Volume:    p.Volume,
			PriceOpen: p.PriceOpen,
			Profit:    p.Profit,
			Margin:    p.Margin,
		})
	}
	return positions, nil
}

func (r *terminalRepository) GetAccount(ctx context.Context) (*model.AccountInfo, error) {
	var result dto.TerminalAccount
	if err := r.get(ctx, "/account", nil, &result); err != nil {
		return nil, err
	}

	return &model.AccountInfo{
		Login:      result.Login,
		Server:     result.Server,
		Currency:   result.Currency,
		Balance:    result.Balance,
		Credit:     result.Credit,
		MarginFree: result.MarginFree,
		Leverage:   result.Leverage,
	}, nil
}

func (r *terminalRepository) get(ctx context.Context, endpoint string, queryParams map[string]string, result interface{}) error {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return err
	}

	start := time.Now()
	resp, err := r.httpClient.Get(ctx, endpoint, queryParams, nil, result)
	monitoring.TerminalRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		monitoring.TerminalRequestErrors.WithLabelValues(endpoint).Inc()
		return fmt.Errorf("%w: request %s: %v", ErrTerminalUnavailable, endpoint, err)
	}

	if resp.StatusCode != http.StatusOK {
		monitoring.TerminalRequestErrors.WithLabelValues(endpoint).Inc()
		r.logger.ErrorContext(ctx, "Terminal returned Non-OK status",
			logger.StringField("endpoint", endpoint),
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("body", string(resp.Body)))
		return fmt.Errorf("%w: %s returned status %d", ErrTerminalUnavailable, endpoint, resp.StatusCode)
	}
	return nil
}
