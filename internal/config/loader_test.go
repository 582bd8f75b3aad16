package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	if got, want := embeddedDefault(), DefaultDodgerConfig(); got != want {
		t.Errorf("embedded YAML = %+v, expected %+v", got, want)
	}
	if err := DefaultDodgerConfig().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadDodgerFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadDodger("")
	if err != nil {
		t.Fatalf("LoadDodger() failed: %v", err)
	}
	if cfg != DefaultDodgerConfig() {
		t.Errorf("LoadDodger() = %+v, expected defaults", cfg)
	}
}

func TestLoadDodgerCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.yaml")
	data := "player:\n  max_speed: 600\nspawn:\n  min_interval: 0.5\n  max_interval: 0.9\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDodger(path)
	if err != nil {
		t.Fatalf("LoadDodger() failed: %v", err)
	}
	if cfg.Player.MaxSpeed != 600 {
		t.Errorf("MaxSpeed = %v, expected 600", cfg.Player.MaxSpeed)
	}
	if cfg.Spawn.MinInterval != 0.5 || cfg.Spawn.MaxInterval != 0.9 {
		t.Errorf("spawn band = [%v, %v], expected [0.5, 0.9]", cfg.Spawn.MinInterval, cfg.Spawn.MaxInterval)
	}
	// Untouched keys keep their defaults
	if cfg.Player.Size != 40 || cfg.Obstacles.BaseRadius != 40 {
		t.Errorf("unset keys should keep defaults, got %+v", cfg)
	}
}

func TestLoadDodgerLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "dodger.yaml"), []byte("obstacles:\n  base_speed: 300\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDodger("")
	if err != nil {
		t.Fatalf("LoadDodger() failed: %v", err)
	}
	if cfg.Obstacles.BaseSpeed != 300 {
		t.Errorf("BaseSpeed = %v, expected 300 from ./configs", cfg.Obstacles.BaseSpeed)
	}
}

func TestLoadDodgerErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadDodger(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDodger(bad); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("malformed YAML should fail to parse, got %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("spawn:\n  min_interval: 2\n  max_interval: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDodger(invalid); err == nil || !strings.Contains(err.Error(), "spawn.max_interval") {
		t.Errorf("inverted spawn band should fail validation, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DodgerConfig)
		field  string
	}{
		{"zero player size", func(c *DodgerConfig) { c.Player.Size = 0 }, "player.size"},
		{"negative acceleration", func(c *DodgerConfig) { c.Player.Acceleration = -1 }, "player.acceleration"},
		{"zero radius", func(c *DodgerConfig) { c.Obstacles.BaseRadius = 0 }, "obstacles.base_radius"},
		{"negative scaling", func(c *DodgerConfig) { c.Difficulty.Scaling.SpeedPerScore = -1 }, "speed_per_score"},
		{"zero cell width", func(c *DodgerConfig) { c.Display.CellWidth = 0 }, "display.cell_width"},
		{"bad progression", func(c *DodgerConfig) { c.Difficulty.Progression.Type = "time" }, "progression.type"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDodgerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.field) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.field)
			}
		})
	}
}

func TestParsePresetAndBoard(t *testing.T) {
	tests := []struct {
		in    string
		want  DifficultyPreset
		board string
	}{
		{"", DifficultyNormal, "dodger"},
		{"normal", DifficultyNormal, "dodger"},
		{"EASY", DifficultyEasy, "dodger_easy"},
		{" hard ", DifficultyHard, "dodger_hard"},
		{"fixed", DifficultyFixed, "dodger_fixed"},
	}
	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
		if got.Board() != tc.board {
			t.Errorf("%q.Board() = %q, expected %q", got, got.Board(), tc.board)
		}
	}

	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestApplyDodgerPreset(t *testing.T) {
	normal := DefaultDodgerConfig()
	ApplyDodgerPreset(&normal, DifficultyNormal)
	if normal != DefaultDodgerConfig() {
		t.Error("normal preset should not change the defaults")
	}

	fixed := DefaultDodgerConfig()
	ApplyDodgerPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable scaling")
	}

	easy := DefaultDodgerConfig()
	ApplyDodgerPreset(&easy, DifficultyEasy)
	if easy.Difficulty.Scaling.SpeedPerScore >= normal.Difficulty.Scaling.SpeedPerScore {
		t.Error("easy preset should slow the speed growth")
	}

	hard := DefaultDodgerConfig()
	ApplyDodgerPreset(&hard, DifficultyHard)
	if hard.Spawn.MaxInterval >= normal.Spawn.MaxInterval {
		t.Error("hard preset should spawn more often")
	}
	for _, cfg := range []DodgerConfig{easy, hard, fixed} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset result should validate: %v", err)
		}
	}
}

func TestMarshalRoundTripsDefaults(t *testing.T) {
	data, err := Marshal(DefaultDodgerConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "radius_per_score: 2") {
		t.Errorf("marshalled YAML should use snake_case keys:\n%s", data)
	}
}
