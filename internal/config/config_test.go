package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.LookbackHours != 24 {
		t.Fatalf("expected default lookback 24h, got %v", cfg.LookbackHours)
	}
	if cfg.MinTopScore != 2.0 {
		t.Fatalf("expected default minTopScore 2.0, got %v", cfg.MinTopScore)
	}
	if cfg.MaxItemsPerSection != 12 {
		t.Fatalf("expected default section cap 12, got %d", cfg.MaxItemsPerSection)
	}
	if len(cfg.Weights.Keywords) == 0 {
		t.Fatalf("expected default keyword buckets")
	}
	if !cfg.Output.Markdown() || !cfg.Output.HTML() {
		t.Fatalf("expected both output formats enabled by default")
	}
}

func TestLoadFileOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	raw := `
feeds:
  - https://feeds.example.com/markets
lookbackHours: 6
minTopScore: 3.5
weights:
  sources:
    wire: 4.0
output:
  includeHtml: false
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("MARKETBRIEF_CONFIG", path)

	cfg := Load()

	if len(cfg.Feeds) != 1 || cfg.Feeds[0] != "https://feeds.example.com/markets" {
		t.Fatalf("feeds not overridden: %v", cfg.Feeds)
	}
	if cfg.LookbackHours != 6 {
		t.Fatalf("lookback not overridden: %v", cfg.LookbackHours)
	}
	if cfg.MinTopScore != 3.5 {
		t.Fatalf("minTopScore not overridden: %v", cfg.MinTopScore)
	}
	if cfg.Weights.Sources["wire"] != 4.0 {
		t.Fatalf("wire weight not overridden: %v", cfg.Weights.Sources["wire"])
	}
	if cfg.Output.HTML() {
		t.Fatalf("includeHtml override ignored")
	}
	if !cfg.Output.Markdown() {
		t.Fatalf("markdown default lost on merge")
	}
	// Untouched keys keep their defaults.
	if cfg.MaxItemsPerSection != 12 {
		t.Fatalf("unrelated default changed: %d", cfg.MaxItemsPerSection)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "tok")
	t.Setenv("TELEGRAM_CHAT_ID", "chat")
	t.Setenv("X_BEARER_TOKEN", "bearer")

	cfg := Load()

	if cfg.Notifications.Telegram.BotToken != "tok" || cfg.Notifications.Telegram.ChatID != "chat" {
		t.Fatalf("telegram env overrides ignored: %+v", cfg.Notifications.Telegram)
	}
	if cfg.X.BearerToken != "bearer" {
		t.Fatalf("x bearer env override ignored")
	}
}

func TestBadTimezoneFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	raw := "scheduler:\n  timezone: Not/AZone\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("MARKETBRIEF_CONFIG", path)

	cfg := Load()
	if cfg.Scheduler.Location().String() != "UTC" {
		t.Fatalf("expected UTC fallback, got %s", cfg.Scheduler.Location())
	}
}
