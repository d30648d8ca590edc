package service

import (
	"trading-dashboard/config"
	"trading-dashboard/internal/repository"
	"trading-dashboard/pkg/logger"
)

type Service struct {
	AnalyticsService AnalyticsService
	ReportService    ReportService
	SchedulerService SchedulerService
}

// NewService wires the services. notifier may be nil when telegram is not
// configured.
func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	notifier Notifier,
) *Service {
	analyticsService := NewAnalyticsService(cfg, log, repo.DealFeed, repo.SnapshotRepo)
	reportService := NewReportService(cfg, log, analyticsService, notifier)

	return &Service{
		AnalyticsService: analyticsService,
		ReportService:    reportService,
		SchedulerService: NewSchedulerService(cfg, log, reportService),
	}
}
