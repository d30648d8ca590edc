package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"trading-dashboard/config"
	"trading-dashboard/internal/analytics"
	"trading-dashboard/internal/model"
	"trading-dashboard/pkg/logger"
	"trading-dashboard/pkg/monitoring"
	"trading-dashboard/pkg/utils"
)

var ErrNotifierDisabled = errors.New("telegram notifier is not configured")

// Notifier delivers a finished report.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// MonthlyReport is one calendar month's performance, with the comparison
// against the month before.
type MonthlyReport struct {
	Window  analytics.Window       `json:"window"`
	Monthly analytics.MonthlyStats `json:"monthly"`
	Metrics *analytics.Metrics     `json:"metrics"`
	Rating  *analytics.Rating      `json:"rating"`
}

type ReportService interface {
	BuildMonthlyReport(ctx context.Context, year int, month time.Month) (*MonthlyReport, error)
	// SendMonthlyReport reports on the last completed month, stores a snapshot
	// of it when persistence is enabled and sends it to the notifier.
	SendMonthlyReport(ctx context.Context) error
	// SaveSnapshot persists the report's metrics and month comparison as they
	// were reported.
	SaveSnapshot(ctx context.Context, r *MonthlyReport, source string) (*model.MetricsSnapshot, error)
}

type reportService struct {
	cfg       *config.Config
	log       *logger.Logger
	analytics AnalyticsService
	notifier  Notifier
	now       func() time.Time
}

// NewReportService builds the service. notifier may be nil.
func NewReportService(cfg *config.Config, log *logger.Logger, analyticsService AnalyticsService, notifier Notifier) *reportService {
	return &reportService{
		cfg:       cfg,
		log:       log,
		analytics: analyticsService,
		notifier:  notifier,
		now:       time.Now,
	}
}

// monthWindows returns the window of the month and the window spanning it and
// the month before.
func monthWindows(year int, month time.Month) (analytics.Window, analytics.Window) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	monthWindow, _ := analytics.NewWindow(first, last)
	withPrevious, _ := analytics.NewWindow(first.AddDate(0, -1, 0), last)
	return monthWindow, withPrevious
}

func (s *reportService) BuildMonthlyReport(ctx context.Context, year int, month time.Month) (*MonthlyReport, error) {
	monthWindow, withPrevious := monthWindows(year, month)

	table, err := s.analytics.Deals(ctx, withPrevious)
	if err != nil {
		return nil, err
	}

	report := &MonthlyReport{
		Window:  monthWindow,
		Monthly: analytics.CompareMonth(analytics.DailyStats(table), year, month),
		Metrics: analytics.CalculateMetrics(table.Within(monthWindow)),
	}
	if report.Metrics != nil {
		rating := analytics.Rate(report.Metrics)
		report.Rating = &rating
	}
	return report, nil
}

func (s *reportService) SaveSnapshot(ctx context.Context, r *MonthlyReport, source string) (*model.MetricsSnapshot, error) {
	return s.analytics.SaveSnapshot(ctx, r.Window, r.Metrics, r.Monthly, source)
}

func (s *reportService) SendMonthlyReport(ctx context.Context) error {
	if s.notifier == nil {
		monitoring.ReportsSent.WithLabelValues("skipped").Inc()
		return ErrNotifierDisabled
	}

	now := s.now().UTC()
	lastMonth := now.AddDate(0, 0, -now.Day())
	report, err := s.BuildMonthlyReport(ctx, lastMonth.Year(), lastMonth.Month())
	if err != nil {
		monitoring.ReportsSent.WithLabelValues("failed").Inc()
		return fmt.Errorf("failed to build monthly report: %w", err)
	}

	if _, err := s.SaveSnapshot(ctx, report, SourceScheduler); err != nil {
		if !errors.Is(err, ErrSnapshotsDisabled) {
			s.log.WarnContext(ctx, "Failed to save monthly snapshot", logger.ErrorField(err))
		}
	}

	if err := s.notifier.Notify(ctx, FormatMonthlyReport(report)); err != nil {
		monitoring.ReportsSent.WithLabelValues("failed").Inc()
		return err
	}

	monitoring.ReportsSent.WithLabelValues("sent").Inc()
	s.log.InfoContext(ctx, "Monthly report sent", logger.StringField("window", report.Window.String()))
	return nil
}

// FormatMonthlyReport renders r as plain text.
func FormatMonthlyReport(r *MonthlyReport) string {
	var b strings.Builder
	monthName := fmt.Sprintf("%s %d", r.Monthly.Month, r.Monthly.Year)
	previousName := r.Window.From.AddDate(0, -1, 0).Month().String()

	fmt.Fprintf(&b, "📊 Performance report %s\n", monthName)
	fmt.Fprintf(&b, "Window: %s\n\n", r.Window)

	if r.Metrics == nil {
		fmt.Fprintf(&b, "No closed trades in %s.\n", monthName)
		fmt.Fprintf(&b, "Previous month: %s\n", utils.FormatSignedMoney(r.Monthly.PreviousProfit))
		return b.String()
	}

	m := r.Metrics
	fmt.Fprintf(&b, "Net profit: %s (%s vs %s)\n",
		utils.FormatSignedMoney(r.Monthly.CurrentProfit),
		utils.FormatPercentage(r.Monthly.PercentageChange),
		previousName)
	fmt.Fprintf(&b, "Trades: %d (win rate %.1f%%)\n", m.TotalTrades, m.WinRate)
	fmt.Fprintf(&b, "Gross profit / loss: %s / %s\n", utils.FormatMoney(m.GrossProfit), utils.FormatMoney(m.GrossLoss))
	fmt.Fprintf(&b, "Profit factor: %s\n", m.ProfitFactor)
	fmt.Fprintf(&b, "Max drawdown: %s\n", utils.FormatMoney(m.MaxDrawdown))
	fmt.Fprintf(&b, "Recovery factor: %s\n", m.RecoveryFactor)
	fmt.Fprintf(&b, "Sharpe ratio: %.2f\n", m.SharpeRatio)
	fmt.Fprintf(&b, "Longest losing streak: %d (%s)\n", m.MaxConsecutiveLosses, analytics.LossStreakRisk(m.MaxConsecutiveLosses))

	if r.Rating != nil {
		fmt.Fprintf(&b, "\nScore: %d/%d (%s)\n", r.Rating.Score, r.Rating.MaxScore, r.Rating.Label)
		for _, rec := range r.Rating.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec.Message)
		}
	}
	return b.String()
}
