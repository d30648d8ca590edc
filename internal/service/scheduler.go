package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trading-dashboard/config"
	"trading-dashboard/pkg/logger"

	"github.com/robfig/cron/v3"
)

type SchedulerService interface {
	// Start registers the report job and starts the cron runner. It returns
	// immediately.
	Start(ctx context.Context) error
	// Stop waits for a running job to finish.
	Stop()
}

type schedulerService struct {
	cfg    *config.Config
	log    *logger.Logger
	report ReportService
	cron   *cron.Cron
	ctx    context.Context
}

func NewSchedulerService(cfg *config.Config, log *logger.Logger, report ReportService) *schedulerService {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	return &schedulerService{
		cfg:    cfg,
		log:    log,
		report: report,
		cron: cron.New(
			cron.WithParser(parser),
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
	}
}

func (s *schedulerService) Start(ctx context.Context) error {
	s.ctx = ctx
	if _, err := s.cron.AddFunc(s.cfg.Scheduler.ReportCron, s.runReport); err != nil {
		return fmt.Errorf("invalid report cron expression %q: %w", s.cfg.Scheduler.ReportCron, err)
	}

	s.cron.Start()
	s.log.Info("Scheduler started", logger.StringField("report_cron", s.cfg.Scheduler.ReportCron))
	return nil
}

func (s *schedulerService) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("Scheduler stopped")
}

func (s *schedulerService) runReport() {
	parent := s.ctx
	if parent == nil {
		parent = context.Background()
	}
	if parent.Err() != nil {
		s.log.Warn("Skipping monthly report, shutting down")
		return
	}

	ctx, cancel := context.WithTimeout(parent, s.cfg.Scheduler.Timeout)
	defer cancel()

	start := time.Now()
	err := s.report.SendMonthlyReport(ctx)
	switch {
	case errors.Is(err, ErrNotifierDisabled):
		s.log.InfoContext(ctx, "Monthly report skipped, telegram is not configured")
	case err != nil:
		s.log.ErrorContextWithAlert(ctx, "Failed to run monthly report", logger.ErrorField(err))
	default:
		s.log.InfoContext(ctx, "Monthly report job completed",
			logger.StringField("duration", time.Since(start).String()))
	}
}
