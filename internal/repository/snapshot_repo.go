package repository

import (
	"context"

	"trading-dashboard/internal/model"
	"trading-dashboard/pkg/utils"

	"gorm.io/gorm"
)

const defaultSnapshotLimit = 50

type SnapshotRepository interface {
	Create(ctx context.Context, snapshot *model.MetricsSnapshot, opts ...utils.DBOption) error
	List(ctx context.Context, param model.GetMetricsSnapshotParam, opts ...utils.DBOption) ([]model.MetricsSnapshot, error)
}

type snapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) Create(ctx context.Context, snapshot *model.MetricsSnapshot, opts ...utils.DBOption) error {
	return utils.ApplyOptions(r.db.WithContext(ctx), opts...).Create(snapshot).Error
}

// List returns the newest snapshots first.
func (r *snapshotRepository) List(ctx context.Context, param model.GetMetricsSnapshotParam, opts ...utils.DBOption) ([]model.MetricsSnapshot, error) {
	if param.From != nil {
		opts = append(opts, utils.WithWhere("window_from >= ?", *param.From))
	}
	limit := param.Limit
	if limit <= 0 {
		limit = defaultSnapshotLimit
	}

	var snapshots []model.MetricsSnapshot
	err := utils.ApplyOptions(r.db.WithContext(ctx), opts...).
		Order("created_at DESC").
		Limit(limit).
		Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}
