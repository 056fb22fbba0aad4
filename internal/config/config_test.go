package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Gold.MinPiles != 10 || c.Gold.MaxPiles != 30 || c.Gold.Total != 300 {
		t.Fatalf("unexpected gold defaults: %+v", c.Gold)
	}
	if c.Player.MaxPlayers != 26 {
		t.Fatalf("MaxPlayers = %d, want 26", c.Player.MaxPlayers)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("NUGGETS_PORT", "5555")
	t.Setenv("NUGGETS_LOG_LEVEL", "debug")
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Net.Port != 5555 {
		t.Fatalf("Net.Port = %d, want 5555", c.Net.Port)
	}
	if c.Log.Level != "debug" {
		t.Fatalf("Log.Level = %q, want debug", c.Log.Level)
	}
}

func TestLoadRejectsBadEnvValue(t *testing.T) {
	t.Setenv("NUGGETS_PORT", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric NUGGETS_PORT")
	}
	os.Unsetenv("NUGGETS_PORT")
}
