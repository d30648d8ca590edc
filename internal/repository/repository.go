package repository

import (
	"trading-dashboard/config"
	"trading-dashboard/pkg/cache"
	"trading-dashboard/pkg/logger"

	"gorm.io/gorm"
)

type Repository struct {
	DealFeed     DealFeed
	SnapshotRepo SnapshotRepository
}

// NewRepository wires the cached terminal feed and, when db is not nil, the
// snapshot store.
func NewRepository(cfg *config.Config, db *gorm.DB, log *logger.Logger) *Repository {
	terminal := NewTerminalRepository(cfg, log)
	feedCache := cache.NewCache(cfg.Cache.DealTTL, cfg.Cache.CleanupInterval)

	repo := &Repository{
		DealFeed: NewCachedDealFeed(terminal, feedCache, cfg.Cache.DealTTL),
	}
	if db != nil {
		repo.SnapshotRepo = NewSnapshotRepository(db)
	}
	return repo
}
