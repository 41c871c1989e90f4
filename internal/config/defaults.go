package config

import (
	_ "embed"
)

//go:embed defaults/slots.yaml
var defaultSlotsYAML []byte

// DefaultSlotsConfig returns the default slot machine configuration.
func DefaultSlotsConfig() SlotsConfig {
	return SlotsConfig{
		Symbols: []SymbolConfig{
			{Name: "cherry", Glyph: "@", Color: "red", Weight: 5},
			{Name: "lemon", Glyph: "o", Color: "yellow", Weight: 5},
			{Name: "bell", Glyph: "A", Color: "bright-yellow", Weight: 4},
			{Name: "clover", Glyph: "%", Color: "green", Weight: 4},
			{Name: "gem", Glyph: "#", Color: "cyan", Weight: 3},
			{Name: "star", Glyph: "*", Color: "magenta", Weight: 3},
			{Name: "coin", Glyph: "$", Color: "bright-green", Weight: 2},
			{Name: "seven", Glyph: "7", Color: "bright-red", Weight: 1},
		},
		Spin: SpinConfig{
			ReelStopTicks:  18,
			ChurnEveryTick: 3,
			FlashTicks:     15,
		},
		Session: SessionConfig{
			Spins: 10,
		},
		Scoring: ScoringConfig{
			Straight:  100,
			Diagonal:  250,
			Adjacency: 400,
		},
		Demo: DemoConfig{
			MaxAttempts: 500,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSlotsYAML
}
