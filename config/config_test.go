package config

import (
	"testing"

	"github.com/milk9111/bubbleblast/ecs"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BUBBLEBLAST_MODE", "")
	t.Setenv("BUBBLEBLAST_LEVEL", "")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mode != ecs.ModeEndless {
		t.Fatalf("expected endless mode, got %s", cfg.Mode)
	}
	if cfg.Level != 0 {
		t.Fatalf("expected level index 0, got %d", cfg.Level)
	}
	if cfg.PrefabDir == "" {
		t.Fatalf("expected a prefab dir")
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("BUBBLEBLAST_MODE", "endless")
	t.Setenv("BUBBLEBLAST_LEVEL", "2")
	t.Setenv("BUBBLEBLAST_DEBUG", "true")

	cfg, err := Load([]string{"-mode", "levels", "-level", "3"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mode != ecs.ModeLevels {
		t.Fatalf("expected levels mode, got %s", cfg.Mode)
	}
	if cfg.Level != 2 {
		t.Fatalf("expected level index 2, got %d", cfg.Level)
	}
	if !cfg.Debug {
		t.Fatalf("expected debug from env")
	}
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	if _, err := Load([]string{"-mode", "arcade"}); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestLoadClampsLevel(t *testing.T) {
	cfg, err := Load([]string{"-level", "-4"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Level != 0 {
		t.Fatalf("expected level index 0, got %d", cfg.Level)
	}
}
