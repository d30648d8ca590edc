package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"trading-dashboard/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestSnapshotRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSnapshotRepository(db)

	snapshot := &model.MetricsSnapshot{
		WindowFrom:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		WindowTo:    time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC),
		TotalTrades: 4,
		NetProfit:   -50,
		MaxDrawdown: 300,
		Score:       20,
		Metrics:     datatypes.JSON(`{"total_trades":4}`),
		Source:      "api",
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "metrics_snapshots"`)).
		WithArgs(snapshot.WindowFrom, snapshot.WindowTo, 4, -50.0, 300.0, 20, sqlmock.AnyArg(), sqlmock.AnyArg(), "api", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	require.NoError(t, repo.Create(context.Background(), snapshot))
	assert.Equal(t, uint(7), snapshot.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSnapshotRepository(db)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "window_from", "window_to", "total_trades", "net_profit", "max_drawdown", "score", "metrics", "monthly_stats", "source", "created_at"}).
		AddRow(2, from, from.AddDate(0, 1, 0), 10, 120.5, 40.0, 75, []byte(`{}`), []byte(`{}`), "scheduler", from.AddDate(0, 1, 1)).
		AddRow(1, from, from.AddDate(0, 1, 0), 9, 100.0, 40.0, 70, []byte(`{}`), []byte(`{}`), "api", from.AddDate(0, 1, 0))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "metrics_snapshots" WHERE window_from >= $1 ORDER BY created_at DESC LIMIT`)).
		WillReturnRows(rows)

	snapshots, err := repo.List(context.Background(), model.GetMetricsSnapshotParam{Limit: 10, From: &from})
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, uint(2), snapshots[0].ID)
	assert.Equal(t, "scheduler", snapshots[0].Source)
	assert.Equal(t, 120.5, snapshots[0].NetProfit)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_ListDefaultLimit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSnapshotRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "metrics_snapshots" ORDER BY created_at DESC LIMIT`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	snapshots, err := repo.List(context.Background(), model.GetMetricsSnapshotParam{})
	require.NoError(t, err)
	assert.Empty(t, snapshots)
	assert.NoError(t, mock.ExpectationsWereMet())
}
