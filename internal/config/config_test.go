package config

import (
	"testing"
	"time"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_TOKEN", "test-token")
	t.Setenv("ENV", "")
	t.Setenv("TIMEZONE", "")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "")
	t.Setenv("WATCH_CHAT_ID", "")
	t.Setenv("WATCH_INTERVAL_MINUTES", "")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Environment != "development" {
		t.Fatalf("expected development, got %q", cfg.Environment)
	}
	if cfg.Timezone != "Europe/Helsinki" {
		t.Fatalf("expected Europe/Helsinki, got %q", cfg.Timezone)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %s", cfg.HTTPTimeout)
	}
	if cfg.WatchChatID != 0 {
		t.Fatalf("expected watcher disabled, got chat %d", cfg.WatchChatID)
	}

	if _, err := cfg.Location(); err != nil {
		t.Fatalf("default timezone does not resolve: %v", err)
	}
}

func TestLoad_RequiresToken(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("TELEGRAM_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing TELEGRAM_TOKEN")
	}
}

func TestLoad_RejectsBadTimeout(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("HTTP_TIMEOUT_SECONDS", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid HTTP_TIMEOUT_SECONDS")
	}
}

func TestLoad_WatcherSettings(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("WATCH_CHAT_ID", "-1001234567890")
	t.Setenv("WATCH_INTERVAL_MINUTES", "15")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.WatchChatID != -1001234567890 {
		t.Fatalf("unexpected chat id %d", cfg.WatchChatID)
	}
	if cfg.WatchInterval != 15*time.Minute {
		t.Fatalf("expected 15m interval, got %s", cfg.WatchInterval)
	}
}

func TestFacilities_Table(t *testing.T) {
	facilities := Facilities()

	hakis, ok := facilities["hakis"]
	if !ok {
		t.Fatal("hakis missing from facility table")
	}
	delsu, ok := facilities["delsu"]
	if !ok {
		t.Fatal("delsu missing from facility table")
	}

	// Same hall, different court
	if hakis.BranchID != delsu.BranchID {
		t.Fatal("expected facilities to share a branch")
	}
	if hakis.UserID == delsu.UserID {
		t.Fatal("expected facilities to have distinct user IDs")
	}
	if hakis.ClosingHour != 18 || delsu.ClosingHour != 19 {
		t.Fatalf("unexpected closing hours: hakis=%d delsu=%d", hakis.ClosingHour, delsu.ClosingHour)
	}
}
