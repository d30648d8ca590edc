package model

import (
	"time"

	"gorm.io/datatypes"
)

// MetricsSnapshot is a persisted copy of the metrics computed for a window.
type MetricsSnapshot struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	WindowFrom   time.Time      `gorm:"not null" json:"window_from"`
	WindowTo     time.Time      `gorm:"not null" json:"window_to"`
	TotalTrades  int            `gorm:"not null" json:"total_trades"`
	NetProfit    float64        `gorm:"not null" json:"net_profit"`
	MaxDrawdown  float64        `gorm:"not null" json:"max_drawdown"`
	Score        int            `gorm:"not null" json:"score"`
	Metrics      datatypes.JSON `gorm:"type:jsonb" json:"metrics"`
	MonthlyStats datatypes.JSON `gorm:"type:jsonb" json:"monthly_stats"`
	Source       string         `gorm:"not null" json:"source"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (MetricsSnapshot) TableName() string {
	return "metrics_snapshots"
}

type GetMetricsSnapshotParam struct {
	Limit int
	From  *time.Time
}
