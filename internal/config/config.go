package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// Canvas geometry, in points. The placement box is the canvas minus padding
	// on every side (170 - 2*68 = 34).
	CanvasSize    = 170.0
	CanvasPadding = 68.0
	DotRadius     = 5.0 // Group dot radius at scale 1
	ChildRadius   = 3.0 // Child dots are always drawn smaller than groups

	// Terminal display
	TargetFPS = 30 // Target frames per second
	FrameRing = 30 // Frame samples kept for the measured FPS readout

	// Easing
	SmoothDefaultDuration = 200 * time.Millisecond
	EaseDuration          = 350 * time.Millisecond // Standard ease, host toolkit default
	SpringFrequency       = 8.0
	SpringDamping         = 0.5
	SpringDuration        = 1200 * time.Millisecond // Long enough for the spring to settle

	// Export
	ExportFPS      = 20
	ExportDuration = 6400 * time.Millisecond // Two full scatter/reassemble cycles
	ExportSize     = 170

	// App
	AppName    = "DOTLOADER"
	AppVersion = "1.0"
)

// Reset transition curves.
const (
	CurveEase   = "ease"
	CurveSpring = "spring"
)

// Config holds the animation constants that may be overridden at runtime.
type Config struct {
	GroupCount       int           `yaml:"group_count"`
	ChildCount       int           `yaml:"child_count"`
	RotationTick     time.Duration `yaml:"rotation_tick"`
	AnimationTick    time.Duration `yaml:"animation_tick"`
	FastRotationDeg  float64       `yaml:"fast_rotation_deg"`
	SlowRotationDeg  float64       `yaml:"slow_rotation_deg"`
	ChildOffsetRange float64       `yaml:"child_offset_range"`
	GroupOffsetRange float64       `yaml:"group_offset_range"`
	GroupScaleActive float64       `yaml:"group_scale_active"`
	ResetCurve       string        `yaml:"reset_curve"`
	Seed             int64         `yaml:"seed"` // 0 seeds from the clock
}

// Default returns the stock animation constants.
func Default() Config {
	return Config{
		GroupCount:       6,
		ChildCount:       3,
		RotationTick:     100 * time.Millisecond,
		AnimationTick:    1600 * time.Millisecond,
		FastRotationDeg:  23,
		SlowRotationDeg:  3,
		ChildOffsetRange: 30,
		GroupOffsetRange: 20,
		GroupScaleActive: 2.5,
		ResetCurve:       CurveEase,
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Parse decodes YAML into cfg, keeping fields the document does not set.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate reports the first setting that would break the animation.
func (c Config) Validate() error {
	switch {
	case c.GroupCount <= 0:
		return fmt.Errorf("group_count must be positive, got %d", c.GroupCount)
	case c.ChildCount <= 0:
		return fmt.Errorf("child_count must be positive, got %d", c.ChildCount)
	case c.RotationTick <= 0:
		return fmt.Errorf("rotation_tick must be positive, got %s", c.RotationTick)
	case c.AnimationTick <= 0:
		return fmt.Errorf("animation_tick must be positive, got %s", c.AnimationTick)
	case c.ChildOffsetRange < 0:
		return fmt.Errorf("child_offset_range must not be negative, got %g", c.ChildOffsetRange)
	case c.GroupOffsetRange < 0:
		return fmt.Errorf("group_offset_range must not be negative, got %g", c.GroupOffsetRange)
	case c.GroupScaleActive <= 0:
		return fmt.Errorf("group_scale_active must be positive, got %g", c.GroupScaleActive)
	}

	switch c.ResetCurve {
	case CurveEase, CurveSpring:
	default:
		return fmt.Errorf("reset_curve must be %q or %q, got %q", CurveEase, CurveSpring, c.ResetCurve)
	}
	return nil
}
