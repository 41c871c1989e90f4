// Package config provides YAML-based configuration loading and difficulty
// presets for the slots machine.
package config

// SlotsConfig contains all configuration for the slot machine.
type SlotsConfig struct {
	Symbols []SymbolConfig `yaml:"symbols"`
	Spin    SpinConfig     `yaml:"spin"`
	Session SessionConfig  `yaml:"session"`
	Scoring ScoringConfig  `yaml:"scoring"`
	Demo    DemoConfig     `yaml:"demo"`
}

// SymbolConfig describes one reel symbol.
type SymbolConfig struct {
	Name   string `yaml:"name"`   // Label used by the win engine
	Glyph  string `yaml:"glyph"`  // Single character drawn on screen
	Color  string `yaml:"color"`  // Color name, see ParseColor
	Weight int    `yaml:"weight"` // Relative draw weight, must be > 0
}

// SpinConfig defines spin animation timing in simulation ticks.
type SpinConfig struct {
	ReelStopTicks  int `yaml:"reel_stop_ticks"`  // Ticks between consecutive reel stops
	ChurnEveryTick int `yaml:"churn_every_tick"` // Ticks between symbol churns while spinning
	FlashTicks     int `yaml:"flash_ticks"`      // Half-period of the win highlight flash
}

// SessionConfig defines session shape.
type SessionConfig struct {
	Spins int `yaml:"spins"` // Spins per session; session ends when spent
}

// ScoringConfig assigns display points per winning path category.
// This is presentation scoring, not a payout model.
type ScoringConfig struct {
	Straight  int `yaml:"straight"`
	Diagonal  int `yaml:"diagonal"`
	Adjacency int `yaml:"adjacency"`
}

// DemoConfig controls the forced-outcome generator used by demo controls.
type DemoConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // Candidate grids tried before giving up
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// symbolCountForPreset returns how many symbols from the configured set are
// in play for a preset. Fewer distinct symbols means more frequent wins.
func symbolCountForPreset(preset DifficultyPreset, configured int) int {
	switch preset {
	case DifficultyEasy:
		return min(4, configured)
	case DifficultyNormal:
		return min(6, configured)
	default:
		return configured
	}
}

// ApplySlotsPreset trims the active symbol set according to the preset.
// An empty preset leaves the config untouched.
func ApplySlotsPreset(cfg *SlotsConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	n := symbolCountForPreset(preset, len(cfg.Symbols))
	cfg.Symbols = cfg.Symbols[:n]
}
