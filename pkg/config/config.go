package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	LogLevel   string `mapstructure:"LOG_LEVEL"`
	ServerPort string `mapstructure:"SERVER_PORT"`

	StartDate       string `mapstructure:"START_DATE"`
	ListingBaseURL  string `mapstructure:"LISTING_BASE_URL"`
	APIBaseURL      string `mapstructure:"API_BASE_URL"`
	UserAgent       string `mapstructure:"USER_AGENT"`
	RequestDelayMS  int    `mapstructure:"REQUEST_DELAY_MS"`
	HTTPTimeoutSecs int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`
	DataDir         string `mapstructure:"DATA_DIR"`
	StopWithoutMore bool   `mapstructure:"STOP_WITHOUT_MORE"`
	SkipArchived    bool   `mapstructure:"SKIP_ARCHIVED"`
	CrawlSchedule   string `mapstructure:"CRAWL_SCHEDULE"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	PostgresURL string `mapstructure:"POSTGRES_URL"`
}

// RequestDelay is the politeness pause between two fetches.
func (c *Config) RequestDelay() time.Duration {
	return time.Duration(c.RequestDelayMS) * time.Millisecond
}

// HTTPTimeout bounds a single request.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSecs) * time.Second
}

// Load reads configuration from an optional .env file and the environment.
func Load() (*Config, error) {
	// A missing .env is fine, production sets real environment variables.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("START_DATE", "2007-10-01")
	v.SetDefault("LISTING_BASE_URL", "https://news.ycombinator.com/front")
	v.SetDefault("API_BASE_URL", "https://hacker-news.firebaseio.com/v0")
	v.SetDefault("USER_AGENT", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	v.SetDefault("REQUEST_DELAY_MS", 1000)
	v.SetDefault("HTTP_TIMEOUT_SECONDS", 10)
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("STOP_WITHOUT_MORE", false)
	v.SetDefault("SKIP_ARCHIVED", false)
	v.SetDefault("CRAWL_SCHEDULE", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("POSTGRES_URL", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.RequestDelayMS < 0 {
		return nil, fmt.Errorf("REQUEST_DELAY_MS must not be negative, got %d", cfg.RequestDelayMS)
	}
	if cfg.HTTPTimeoutSecs <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT_SECONDS must be positive, got %d", cfg.HTTPTimeoutSecs)
	}
	return &cfg, nil
}
