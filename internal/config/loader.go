package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSlots loads the slot machine configuration.
// Search order: customPath -> ~/.slots/configs/slots.yaml -> ./configs/slots.yaml -> embedded default
func LoadSlots(customPath string) (SlotsConfig, error) {
	var cfg SlotsConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("slots.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/slots.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSlotsYAML, &cfg); err != nil {
		return DefaultSlotsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Validate checks the config for values the game cannot run with.
func (c SlotsConfig) Validate() error {
	if len(c.Symbols) < 2 {
		return fmt.Errorf("config needs at least 2 symbols, got %d", len(c.Symbols))
	}
	seen := make(map[string]bool, len(c.Symbols))
	for _, s := range c.Symbols {
		if s.Name == "" {
			return fmt.Errorf("symbol with empty name")
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate symbol name %q", s.Name)
		}
		seen[s.Name] = true
		if s.Weight <= 0 {
			return fmt.Errorf("symbol %q has non-positive weight %d", s.Name, s.Weight)
		}
	}
	if c.Session.Spins <= 0 {
		return fmt.Errorf("session.spins must be positive, got %d", c.Session.Spins)
	}
	if c.Spin.ReelStopTicks <= 0 {
		return fmt.Errorf("spin.reel_stop_ticks must be positive, got %d", c.Spin.ReelStopTicks)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slots", "configs", filename)
}
