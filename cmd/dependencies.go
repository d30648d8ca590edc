package cmd

import (
	"context"

	"trading-dashboard/config"
	"trading-dashboard/internal/service"
	"trading-dashboard/pkg/logger"
	"trading-dashboard/pkg/postgres"
	"trading-dashboard/pkg/telegram"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

type AppDependency struct {
	db        *postgres.DB
	cfg       *config.Config
	log       *logger.Logger
	validator *goValidator.Validate
	echo      *echo.Echo
	// nil unless telegram is configured
	notifier  service.Notifier
}

func NewAppDependency(ctx context.Context) (*AppDependency, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, err
	}

	dep := &AppDependency{
		cfg:       cfg,
		log:       log,
		validator: goValidator.New(),
		echo:      echo.New(),
	}

	if cfg.DB.Enabled() {
		db, err := postgres.NewDB(cfg.DB, log)
		if err != nil {
			log.Error("Failed to connect to database", zap.Error(err))
			return nil, err
		}
		dep.db = db
	} else {
		log.Info("Database host not configured, snapshots disabled")
	}

	if cfg.Telegram.Enabled() {
		bot, err := telegram.NewBot(cfg.Telegram, log)
		if err != nil {
			log.Error("Failed to create telegram bot", zap.Error(err))
			return nil, err
		}
		notifier := telegram.NewNotifier(cfg.Telegram, log, bot)
		dep.notifier = notifier
		if cfg.Telegram.AlertEnabled {
			dep.log = log.WithAlert(notifier, zapcore.ErrorLevel)
		}
	} else {
		log.Info("Telegram not configured, reports and alerts disabled")
	}

	return dep, nil
}

// gormDB returns nil when persistence is disabled.
func (d *AppDependency) gormDB() *gorm.DB {
	if d.db == nil {
		return nil
	}
	return d.db.DB
}

func (d *AppDependency) Close() error {
	d.log.Info("Closing app dependency")
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}
