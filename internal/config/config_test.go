package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultAsteroidsConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, src, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %s, expected %s", src, SourceEmbedded)
	}
	if cfg != DefaultAsteroidsConfig() {
		t.Errorf("embedded YAML drifted from DefaultAsteroidsConfig():\n%+v\n%+v", cfg, DefaultAsteroidsConfig())
	}
}

func TestLoadCustomPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "gameplay:\n  lives: 7\nlasers:\n  max: 4\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %s, expected %s", src, SourceCustom)
	}
	if cfg.Gameplay.Lives != 7 || cfg.Lasers.Max != 4 {
		t.Errorf("overrides not applied: lives=%d max=%d", cfg.Gameplay.Lives, cfg.Lasers.Max)
	}
	// Untouched fields keep their defaults
	if cfg.Ship.Size != 30 || cfg.Gameplay.PointsSmall != 100 {
		t.Errorf("defaults lost: size=%v small=%d", cfg.Ship.Size, cfg.Gameplay.PointsSmall)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ship: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("malformed YAML should fail to parse, got %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("gameplay:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(invalid); err == nil || !strings.Contains(err.Error(), "gameplay.lives") {
		t.Errorf("zero lives should fail validation, got %v", err)
	}
}

func TestLoadLocalDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", ConfigFile), []byte("obstacles:\n  base_count: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if src != SourceLocal {
		t.Errorf("source = %s, expected %s", src, SourceLocal)
	}
	if cfg.Obstacles.BaseCount != 6 {
		t.Errorf("base_count = %d, expected 6", cfg.Obstacles.BaseCount)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		lives     int
		baseCount int
		step      float64
	}{
		{DifficultyEasy, 5, 2, 0.1},
		{DifficultyNormal, 3, 3, 0.1},
		{DifficultyHard, 2, 4, 0.15},
		{DifficultyFixed, 3, 3, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultAsteroidsConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
			if cfg.Obstacles.BaseCount != tc.baseCount {
				t.Errorf("base_count = %d, expected %d", cfg.Obstacles.BaseCount, tc.baseCount)
			}
			if cfg.Difficulty.SpeedStep != tc.step {
				t.Errorf("speed_step = %v, expected %v", cfg.Difficulty.SpeedStep, tc.step)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should map to empty")
	}
}

func TestSpeedMultiplier(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{SpeedStep: 0.1, SpawnAttempts: 0})

	tests := []struct {
		level    int
		expected float64
	}{
		{0, 1.0},
		{1, 1.1},
		{5, 1.5},
		{-3, 1.0},
	}
	for _, tc := range tests {
		got := d.SpeedMultiplier(tc.level)
		if got < tc.expected-1e-9 || got > tc.expected+1e-9 {
			t.Errorf("SpeedMultiplier(%d) = %v, expected %v", tc.level, got, tc.expected)
		}
	}

	if d.SpawnAttempts() != 1 {
		t.Errorf("SpawnAttempts() should be at least 1, got %d", d.SpawnAttempts())
	}
	if d.IsFixed() {
		t.Error("non-zero step is not fixed")
	}
}
