package postgres

import (
	"testing"

	"trading-dashboard/config"

	"github.com/stretchr/testify/assert"
	gormlogger "gorm.io/gorm/logger"
)

func TestDSN(t *testing.T) {
	cfg := config.Database{Host: "db", Port: 5432, User: "dash", Password: "pw", DBName: "analytics", SSLMode: "disable"}
	assert.Equal(t, "host=db user=dash password=pw dbname=analytics port=5432 sslmode=disable", DSN(cfg))

	cfg.TimeZone = "UTC"
	assert.Equal(t, "host=db user=dash password=pw dbname=analytics port=5432 sslmode=disable TimeZone=UTC", DSN(cfg))
}

func TestURL(t *testing.T) {
	cfg := config.Database{Host: "db", Port: 5432, User: "dash", Password: "p@ss:word", DBName: "analytics", SSLMode: "require"}
	assert.Equal(t, "postgres://dash:p%40ss%3Aword@db:5432/analytics?sslmode=require", URL(cfg))
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, gormLogLevel("Silent"))
	assert.Equal(t, gormlogger.Info, gormLogLevel("Info"))
	assert.Equal(t, gormlogger.Warn, gormLogLevel(""))
}
