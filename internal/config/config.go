package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	Environment   string
	Timezone      string
	HTTPTimeout   time.Duration

	// Watcher is enabled when WatchChatID is set.
	WatchChatID   int64
	WatchInterval time.Duration
}

func Load() (*Config, error) {
	// .env is optional, env vars win either way
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		Environment:   os.Getenv("ENV"),
		Timezone:      os.Getenv("TIMEZONE"),
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Europe/Helsinki"
	}

	timeoutSeconds := 10
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT_SECONDS: %q", v)
		}
		timeoutSeconds = n
	}
	cfg.HTTPTimeout = time.Duration(timeoutSeconds) * time.Second

	if v := os.Getenv("WATCH_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid WATCH_CHAT_ID: %q", v)
		}
		cfg.WatchChatID = id
	}

	watchMinutes := 30
	if v := os.Getenv("WATCH_INTERVAL_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid WATCH_INTERVAL_MINUTES: %q", v)
		}
		watchMinutes = n
	}
	cfg.WatchInterval = time.Duration(watchMinutes) * time.Minute

	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}

	return cfg, nil
}

// Location resolves the reference timezone all shift end times are
// compared in.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
