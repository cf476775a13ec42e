package splitter

import "fmt"

// Config is the immutable detection configuration. Validate before use;
// the pipeline never reads a frame with an invalid config.
type Config struct {
	// Threshold is the multiplicative factor over the rolling mean score
	// above which a frame starts a new scene.
	Threshold float64

	// MinSceneLen is the minimum scene length in frames.
	MinSceneLen int

	// Window is the rolling average window size in frames.
	Window int

	// OutputDir receives the per-scene clip files.
	OutputDir string

	// DryRun computes scenes without writing clips.
	DryRun bool

	// StatsFile, when set, receives per-scene statistics as CSV.
	StatsFile string
}

// DefaultConfig returns the detection defaults.
func DefaultConfig() Config {
	return Config{
		Threshold:   2.0,
		MinSceneLen: 15,
		Window:      20,
		OutputDir:   "clips",
	}
}

// Validate checks the configuration bounds.
func (c Config) Validate() error {
	if c.Threshold <= 0 {
		return fmt.Errorf("%w: threshold must be > 0, got %g", ErrInvalidConfig, c.Threshold)
	}
	if c.MinSceneLen < 1 {
		return fmt.Errorf("%w: min scene length must be >= 1, got %d", ErrInvalidConfig, c.MinSceneLen)
	}
	if c.Window < 1 {
		return fmt.Errorf("%w: window must be >= 1, got %d", ErrInvalidConfig, c.Window)
	}
	return nil
}
