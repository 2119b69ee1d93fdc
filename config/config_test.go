package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sushi-belt.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should validate, got: %v", err)
	}
	if cfg.FixedTick() != 30*time.Millisecond {
		t.Errorf("Expected 30ms fixed tick, got %v", cfg.FixedTick())
	}
	if cfg.ComboWindow() != time.Second {
		t.Errorf("Expected 1s combo window, got %v", cfg.ComboWindow())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
difficulty = 3
motion = "orbit"

[loop]
max_ticks_per_frame = 10

[scoring]
hazard_penalty = -25

[kinds.bomb]
weight = 0.2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Difficulty != 3 || cfg.Motion != MotionOrbit {
		t.Errorf("Expected difficulty 3 orbit, got %d %s", cfg.Difficulty, cfg.Motion)
	}
	if cfg.Loop.MaxTicksPerFrame != 10 {
		t.Errorf("Expected max ticks 10, got %d", cfg.Loop.MaxTicksPerFrame)
	}
	// Untouched keys keep defaults
	if cfg.Loop.FixedTickMs != 30 {
		t.Errorf("Expected default fixed tick 30, got %d", cfg.Loop.FixedTickMs)
	}
	if cfg.Scoring.HazardPenalty != -25 {
		t.Errorf("Expected hazard penalty -25, got %d", cfg.Scoring.HazardPenalty)
	}
	k, ok := cfg.Kinds["bomb"]
	if !ok || k.Weight == nil || *k.Weight != 0.2 {
		t.Errorf("Expected bomb weight override 0.2, got %+v", k)
	}
	if k.Value != nil {
		t.Error("Expected bomb value to stay unset")
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := writeConfig(t, "difficulty = 2\nspeeed = 4\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "speeed") {
		t.Fatalf("Expected unknown key error naming speeed, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"difficulty", func(c *Config) { c.Difficulty = 4 }},
		{"motion", func(c *Config) { c.Motion = "spiral" }},
		{"tick", func(c *Config) { c.Loop.FixedTickMs = 0 }},
		{"tick cap", func(c *Config) { c.Loop.MaxTicksPerFrame = 0 }},
		{"positive penalty", func(c *Config) { c.Scoring.HazardPenalty = 10 }},
		{"multiplier cap", func(c *Config) { c.Scoring.MultiplierCap = 0.5 }},
		{"spawn cap below base", func(c *Config) { c.Spawn.Cap = 1; c.Spawn.Base = 3 }},
		{"size band", func(c *Config) { c.Spawn.SizeMin = 0 }},
		{"belt too small", func(c *Config) { c.Belt.Cols = 2 }},
		{"negative kind weight", func(c *Config) {
			w := -0.1
			c.Kinds = map[string]KindConfig{"bomb": {Weight: &w}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Expected validation error for %s", tt.name)
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	w := 0.5
	cfg := Default()
	cfg.Kinds = map[string]KindConfig{"bomb": {Weight: &w}}

	cp := cfg.Clone()
	cp.Difficulty = 1
	delete(cp.Kinds, "bomb")

	if cfg.Difficulty != 2 {
		t.Error("Clone shares scalar fields with the original")
	}
	if _, ok := cfg.Kinds["bomb"]; !ok {
		t.Error("Clone shares the kinds map with the original")
	}
}
