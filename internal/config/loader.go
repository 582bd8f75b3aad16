package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDodger loads the game configuration.
// Search order: customPath -> ~/.dodger/configs/dodger.yaml -> ./configs/dodger.yaml -> embedded default.
// Files only need the keys they change; everything else keeps its default.
func LoadDodger(customPath string) (DodgerConfig, error) {
	cfg := embeddedDefault()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := embeddedDefault()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		return candidate, candidate.Validate()
	}

	return cfg, nil
}

// embeddedDefault parses the embedded YAML, falling back to the hardcoded defaults.
func embeddedDefault() DodgerConfig {
	cfg := DefaultDodgerConfig()
	if err := yaml.Unmarshal(defaultDodgerYAML, &cfg); err != nil {
		return DefaultDodgerConfig()
	}
	return cfg
}

// searchPaths lists the implicit config locations, most specific first.
func searchPaths() []string {
	var paths []string
	if p := userConfigPath("dodger.yaml"); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", "dodger.yaml"))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodger", "configs", filename)
}

// ApplyDodgerPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded numbers untouched.
func ApplyDodgerPreset(cfg *DodgerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Scaling.RadiusPerScore /= 2
		cfg.Difficulty.Scaling.SpeedPerScore /= 2
		cfg.Spawn.MinInterval += 0.2
		cfg.Spawn.MaxInterval += 0.2
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Scaling.RadiusPerScore *= 1.5
		cfg.Difficulty.Scaling.SpeedPerScore *= 1.5
		cfg.Spawn.MinInterval *= 0.75
		cfg.Spawn.MaxInterval *= 0.75
	}
}

// Marshal renders a config back to YAML.
func Marshal(cfg DodgerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
