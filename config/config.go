package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log       Logger         `mapstructure:"logger"`
	DB        Database       `mapstructure:"database"`
	API       API            `mapstructure:"api"`
	Terminal  Terminal       `mapstructure:"terminal"`
	Cache     Cache          `mapstructure:"cache"`
	Analytics Analytics      `mapstructure:"analytics"`
	Scheduler Scheduler      `mapstructure:"scheduler"`
	Telegram  TelegramConfig `mapstructure:"telegram"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type Database struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"name"`
	SSLMode         string `mapstructure:"ssl_mode"`
	TimeZone        string `mapstructure:"time_zone"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime string `mapstructure:"conn_max_lifetime"`
	LogLevel        string `mapstructure:"log_level"`
}

// Enabled reports whether snapshot persistence is configured.
func (d Database) Enabled() bool {
	return d.Host != ""
}

type API struct {
	Port               int `mapstructure:"port"`
	RateLimitPerSecond int `mapstructure:"rate_limit_per_second"`
	RateLimitBurst     int `mapstructure:"rate_limit_burst"`
}

// Terminal points at the HTTP bridge in front of the trading terminal.
type Terminal struct {
	BaseURL          string        `mapstructure:"base_url"`
	Token            string        `mapstructure:"token"`
	Timeout          time.Duration `mapstructure:"timeout"`
	MaxRequestPerMin int           `mapstructure:"max_request_per_min"`
}

type Cache struct {
	DealTTL         time.Duration `mapstructure:"deal_ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

type Analytics struct {
	DefaultLookbackDays int `mapstructure:"default_lookback_days"`
}

type Scheduler struct {
	Enabled    bool          `mapstructure:"enabled"`
	ReportCron string        `mapstructure:"report_cron"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type TelegramConfig struct {
	BotToken            string `mapstructure:"bot_token"`
	ChatID              int64  `mapstructure:"chat_id"`
	MaxMessagePerSecond int    `mapstructure:"max_message_per_second"`
	AlertEnabled        bool   `mapstructure:"alert_enabled"`
}

func (t TelegramConfig) Enabled() bool {
	return t.BotToken != "" && t.ChatID != 0
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.rate_limit_per_second", 10)
	v.SetDefault("api.rate_limit_burst", 30)
	v.SetDefault("terminal.timeout", 30*time.Second)
	v.SetDefault("terminal.max_request_per_min", 120)
	v.SetDefault("cache.deal_ttl", 5*time.Minute)
	v.SetDefault("cache.cleanup_interval", 10*time.Minute)
	v.SetDefault("analytics.default_lookback_days", 730)
	v.SetDefault("scheduler.report_cron", "0 8 1 * *")
	v.SetDefault("scheduler.timeout", 2*time.Minute)
	v.SetDefault("telegram.max_message_per_second", 1)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_mode", "disable")
}

// Load reads config.yaml from the working directory, an optional .env file and
// the process environment, in increasing order of precedence.
func Load() (*Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// AutomaticEnv only resolves keys viper already knows about
	for _, key := range []string{
		"terminal.base_url", "terminal.token",
		"database.host", "database.user", "database.password", "database.name", "database.time_zone",
		"telegram.bot_token", "telegram.chat_id", "telegram.alert_enabled",
		"scheduler.enabled",
	} {
		_ = v.BindEnv(key)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Terminal.BaseURL == "" {
		return errors.New("terminal.base_url is required")
	}
	if c.Cache.DealTTL <= 0 {
		return fmt.Errorf("cache.deal_ttl must be positive, got %s", c.Cache.DealTTL)
	}
	if c.Terminal.MaxRequestPerMin <= 0 {
		return fmt.Errorf("terminal.max_request_per_min must be positive, got %d", c.Terminal.MaxRequestPerMin)
	}
	if c.Analytics.DefaultLookbackDays <= 0 {
		return fmt.Errorf("analytics.default_lookback_days must be positive, got %d", c.Analytics.DefaultLookbackDays)
	}
	return nil
}
