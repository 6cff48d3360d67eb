// Package config provides configuration loading and access for the match.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all match configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Court     CourtConfig     `yaml:"court"`
	Paddle    PaddleConfig    `yaml:"paddle"`
	Ball      BallConfig      `yaml:"ball"`
	Opponent  OpponentConfig  `yaml:"opponent"`
	Match     MatchConfig     `yaml:"match"`
	Autopilot AutopilotConfig `yaml:"autopilot"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Audio     AudioConfig     `yaml:"audio"`
	Effects   EffectsConfig   `yaml:"effects"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings for the graphical front end.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// CourtConfig holds the play area dimensions in court units.
type CourtConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig holds paddle geometry.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Inset  float64 `yaml:"inset"` // Depth of the hit zone measured from each scoring edge
}

// BallConfig holds ball geometry and speed bounds.
type BallConfig struct {
	Radius        float64 `yaml:"radius"`
	InitialSpeedY float64 `yaml:"initial_speed_y"` // Negative: ball serves toward the opponent
	MinSpeedY     float64 `yaml:"min_speed_y"`     // Negative bound
	MaxSpeedY     float64 `yaml:"max_speed_y"`     // Positive bound
	Deflection    float64 `yaml:"deflection"`      // speedX per unit of off-center contact
}

// OpponentConfig holds the tracking heuristic parameters.
type OpponentConfig struct {
	LeadOffset     float64 `yaml:"lead_offset"`
	BaseShift      float64 `yaml:"base_shift"`
	ScoreDivisor   int     `yaml:"score_divisor"`
	WaitForPointer bool    `yaml:"wait_for_pointer"` // Hold still until the player first moves
}

// MatchConfig holds termination settings.
type MatchConfig struct {
	WinningScore int `yaml:"winning_score"`
}

// AutopilotConfig holds the scripted near-paddle player used in headless runs.
type AutopilotConfig struct {
	ReactionTicks int     `yaml:"reaction_ticks"` // Ticks of lag on the observed ball position
	Jitter        float64 `yaml:"jitter"`         // Max random aim error in court units
	MaxStep       float64 `yaml:"max_step"`       // Max pointer travel per tick
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // Seconds of simulated play per window
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
	HighlightHistory    int     `yaml:"highlight_history"`
	LongRallyMultiplier float64 `yaml:"long_rally_multiplier"`
	MinLongRally        int     `yaml:"min_long_rally"` // Ticks
	ComebackDeficit     int     `yaml:"comeback_deficit"`
}

// AudioConfig holds sound settings.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"`
}

// EffectsConfig holds spark particle settings.
type EffectsConfig struct {
	MaxSparks int `yaml:"max_sparks"`
	SparkLife int `yaml:"spark_life"` // Ticks
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT        float64 // Seconds per tick at the target frame rate
	CourtW32  float32
	CourtH32  float32
	ScreenW32 float32
	ScreenH32 float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	fps := c.Screen.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	c.Derived.DT = 1.0 / float64(fps)
	c.Derived.CourtW32 = float32(c.Court.Width)
	c.Derived.CourtH32 = float32(c.Court.Height)

	// Screen defaults to the court size if not specified
	screenW := c.Screen.Width
	if screenW == 0 {
		screenW = int(c.Court.Width)
	}
	screenH := c.Screen.Height
	if screenH == 0 {
		screenH = int(c.Court.Height)
	}
	c.Derived.ScreenW32 = float32(screenW)
	c.Derived.ScreenH32 = float32(screenH)
}

// Clone returns a deep copy safe to modify independently.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
