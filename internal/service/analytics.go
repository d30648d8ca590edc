package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trading-dashboard/config"
	"trading-dashboard/internal/analytics"
	"trading-dashboard/internal/model"
	"trading-dashboard/internal/repository"
	"trading-dashboard/pkg/logger"
	"trading-dashboard/pkg/monitoring"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrSnapshotsDisabled is returned by snapshot operations when no database is
// configured.
var ErrSnapshotsDisabled = errors.New("snapshot persistence is disabled")

// Snapshot sources.
const (
	SourceAPI       = "api"
	SourceScheduler = "scheduler"
	SourceCLI       = "cli"
)

type AnalyticsService interface {
	// DefaultWindow is the configured lookback ending today.
	DefaultWindow() analytics.Window
	Deals(ctx context.Context, window analytics.Window) (analytics.DealTable, error)
	Daily(ctx context.Context, window analytics.Window) ([]analytics.DailyAggregate, error)
	Monthly(ctx context.Context, window analytics.Window, year int, month time.Month) (analytics.MonthlyStats, error)
	MonthlySeries(ctx context.Context, window analytics.Window) ([]analytics.MonthProfit, error)
	// Metrics returns nil when the window has no exit deals.
	Metrics(ctx context.Context, window analytics.Window) (*analytics.Metrics, error)
	Drawdown(ctx context.Context, window analytics.Window) (*analytics.DrawdownSummary, error)
	Rating(ctx context.Context, window analytics.Window) (*analytics.Rating, error)
	Calendar(ctx context.Context, window analytics.Window, year int, month time.Month) (analytics.Calendar, error)
	Overview(ctx context.Context) (*analytics.AccountOverview, error)
	Snapshot(ctx context.Context, window analytics.Window, source string) (*model.MetricsSnapshot, error)
	// SaveSnapshot persists metrics and a month comparison computed by the
	// caller. metrics may be nil for a window without exits.
	SaveSnapshot(ctx context.Context, window analytics.Window, metrics *analytics.Metrics, monthly analytics.MonthlyStats, source string) (*model.MetricsSnapshot, error)
	ListSnapshots(ctx context.Context, param model.GetMetricsSnapshotParam) ([]model.MetricsSnapshot, error)
}

type analyticsService struct {
	cfg          *config.Config
	log          *logger.Logger
	feed         repository.DealFeed
	snapshotRepo repository.SnapshotRepository
	now          func() time.Time
}

// NewAnalyticsService builds the service. snapshotRepo may be nil.
func NewAnalyticsService(
	cfg *config.Config,
	log *logger.Logger,
	feed repository.DealFeed,
	snapshotRepo repository.SnapshotRepository,
) *analyticsService {
	return &analyticsService{
		cfg:          cfg,
		log:          log,
		feed:         feed,
		snapshotRepo: snapshotRepo,
		now:          time.Now,
	}
}

func (s *analyticsService) DefaultWindow() analytics.Window {
	return analytics.LookbackWindow(s.now().UTC(), s.cfg.Analytics.DefaultLookbackDays)
}

func (s *analyticsService) Deals(ctx context.Context, window analytics.Window) (analytics.DealTable, error) {
	raw, err := s.feed.GetDeals(ctx, window.From, window.To)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to fetch deal history",
			logger.ErrorField(err),
			logger.StringField("window", window.String()))
		return analytics.DealTable{}, err
	}

	table, err := analytics.NormalizeDeals(raw, window)
	if err != nil {
		monitoring.IntegrityErrors.Inc()
		s.log.ErrorContextWithAlert(ctx, "Rejected deal history",
			logger.ErrorField(err),
			logger.StringField("window", window.String()),
			logger.IntField("deal_count", len(raw)))
		return analytics.DealTable{}, err
	}

	monitoring.DealsNormalized.Add(float64(len(table.Deals)))
	s.log.DebugContext(ctx, "Deal history normalized",
		logger.StringField("window", window.String()),
		logger.IntField("deal_count", len(table.Deals)))
	return table, nil
}

func (s *analyticsService) Daily(ctx context.Context, window analytics.Window) ([]analytics.DailyAggregate, error) {
	table, err := s.Deals(ctx, window)
	if err != nil {
		return nil, err
	}
	return analytics.DailyStats(table), nil
}

func (s *analyticsService) Monthly(ctx context.Context, window analytics.Window, year int, month time.Month) (analytics.MonthlyStats, error) {
	daily, err := s.Daily(ctx, window)
	if err != nil {
		return analytics.MonthlyStats{}, err
	}
	return analytics.CompareMonth(daily, year, month), nil
}

func (s *analyticsService) MonthlySeries(ctx context.Context, window analytics.Window) ([]analytics.MonthProfit, error) {
	table, err := s.Deals(ctx, window)
	if err != nil {
		return nil, err
	}
	return analytics.MonthlySeries(table), nil
}

func (s *analyticsService) Metrics(ctx context.Context, window analytics.Window) (*analytics.Metrics, error) {
	table, err := s.Deals(ctx, window)
	if err != nil {
		return nil, err
	}
	return analytics.CalculateMetrics(table), nil
}

// Drawdown returns nil when the window has no exit deals.
func (s *analyticsService) Drawdown(ctx context.Context, window analytics.Window) (*analytics.DrawdownSummary, error) {
	var (
		metrics *analytics.Metrics
		account *model.AccountInfo
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		metrics, err = s.Metrics(gctx, window)
		return err
	})
	g.Go(func() error {
		var err error
		account, err = s.feed.GetAccount(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if metrics == nil {
		return nil, nil
	}
	summary := analytics.SummarizeDrawdown(metrics, account.Balance)
	return &summary, nil
}

// Rating returns nil when the window has no exit deals.
func (s *analyticsService) Rating(ctx context.Context, window analytics.Window) (*analytics.Rating, error) {
	metrics, err := s.Metrics(ctx, window)
	if err != nil || metrics == nil {
		return nil, err
	}
	rating := analytics.Rate(metrics)
	return &rating, nil
}

func (s *analyticsService) Calendar(ctx context.Context, window analytics.Window, year int, month time.Month) (analytics.Calendar, error) {
	daily, err := s.Daily(ctx, window)
	if err != nil {
		return analytics.Calendar{}, err
	}
	return analytics.MonthCalendar(daily, year, month), nil
}

func (s *analyticsService) Overview(ctx context.Context) (*analytics.AccountOverview, error) {
	var (
		account   *model.AccountInfo
		positions []model.Position
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		account, err = s.feed.GetAccount(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		positions, err = s.feed.GetPositions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.ErrorContext(ctx, "Failed to load account overview", logger.ErrorField(err))
		return nil, err
	}

	overview := analytics.Overview(*account, positions)
	return &overview, nil
}

// Snapshot computes the metrics of window and persists them together with the
// monthly comparison of the month window ends in.
func (s *analyticsService) Snapshot(ctx context.Context, window analytics.Window, source string) (*model.MetricsSnapshot, error) {
	if s.snapshotRepo == nil {
		return nil, ErrSnapshotsDisabled
	}

	table, err := s.Deals(ctx, window)
	if err != nil {
		return nil, err
	}
	metrics := analytics.CalculateMetrics(table)
	monthly := analytics.CompareMonth(analytics.DailyStats(table), window.To.Year(), window.To.Month())
	return s.SaveSnapshot(ctx, window, metrics, monthly, source)
}

func (s *analyticsService) SaveSnapshot(
	ctx context.Context,
	window analytics.Window,
	metrics *analytics.Metrics,
	monthly analytics.MonthlyStats,
	source string,
) (*model.MetricsSnapshot, error) {
	if s.snapshotRepo == nil {
		return nil, ErrSnapshotsDisabled
	}

	snapshot, err := newSnapshot(window, metrics, monthly, source)
	if err != nil {
		return nil, err
	}

	if err := s.snapshotRepo.Create(ctx, snapshot); err != nil {
		s.log.ErrorContext(ctx, "Failed to save metrics snapshot", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to save metrics snapshot: %w", err)
	}

	s.log.InfoContext(ctx, "Metrics snapshot saved",
		logger.IntField("id", int(snapshot.ID)),
		logger.StringField("window", window.String()),
		logger.StringField("source", source),
		logger.FloatField("net_profit", snapshot.NetProfit))
	return snapshot, nil
}

func (s *analyticsService) ListSnapshots(ctx context.Context, param model.GetMetricsSnapshotParam) ([]model.MetricsSnapshot, error) {
	if s.snapshotRepo == nil {
		return nil, ErrSnapshotsDisabled
	}
	return s.snapshotRepo.List(ctx, param)
}

func newSnapshot(window analytics.Window, metrics *analytics.Metrics, monthly analytics.MonthlyStats, source string) (*model.MetricsSnapshot, error) {
	metricsJSON, err := json.Marshal(metrics)
	if err != nil {
		return nil, fmt.Errorf("failed to encode metrics: %w", err)
	}
	monthlyJSON, err := json.Marshal(monthly)
	if err != nil {
		return nil, fmt.Errorf("failed to encode monthly stats: %w", err)
	}

	snapshot := &model.MetricsSnapshot{
		WindowFrom:   window.From,
		WindowTo:     window.To,
		Metrics:      datatypes.JSON(metricsJSON),
		MonthlyStats: datatypes.JSON(monthlyJSON),
		Source:       source,
	}
	if metrics != nil {
		snapshot.TotalTrades = metrics.TotalTrades
		snapshot.NetProfit = metrics.NetProfit
		snapshot.MaxDrawdown = metrics.MaxDrawdown
		snapshot.Score = analytics.Rate(metrics).Score
	}
	return snapshot, nil
}
