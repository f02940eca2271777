package config

import (
	"testing"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.DefaultWeeks != 12 {
		t.Errorf("DefaultWeeks = %d, want 12", cfg.General.DefaultWeeks)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q", cfg.Appearance.Theme)
	}
	if cfg.Appearance.Currency != "$" {
		t.Errorf("Currency = %q", cfg.Appearance.Currency)
	}
	if Exists() {
		t.Error("Exists() = true before any Save")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DefaultWeeks = 26
	cfg.General.BudgetFile = "/tmp/budget.json"
	cfg.General.Balance = 1500.50
	cfg.Appearance.Currency = "€"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != cfg {
		t.Errorf("Load = %+v, want %+v", loaded, cfg)
	}
}
