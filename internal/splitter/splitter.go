package splitter

import (
	"context"
	"fmt"
)

// Splitter runs the scene detection and splitting pipeline: a single
// forward pass over the score source, boundary detection, scene building,
// then the output adapters. It never logs; failures come back as wrapped
// error kinds with enough context for the caller to render messages.
type Splitter struct {
	cfg    Config
	source ScoreSource
	writer ClipWriter
}

// New validates the config and assembles the pipeline. writer may be nil
// when the caller only detects (or always dry-runs).
func New(cfg Config, source ScoreSource, writer ClipWriter) (*Splitter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if writer == nil && !cfg.DryRun {
		return nil, fmt.Errorf("%w: clip writer required unless dry-run", ErrInvalidConfig)
	}
	return &Splitter{cfg: cfg, source: source, writer: writer}, nil
}

// DetectResult is the outcome of the detection pass.
type DetectResult struct {
	Scenes      []Scene
	TotalFrames int
}

// DetectScenes performs the single-pass detection: scores stream through
// the adaptive detector, the boundary list is finalized at end of stream,
// and the builder turns it into the gap-free scene list.
func (s *Splitter) DetectScenes(ctx context.Context) (*DetectResult, error) {
	det := NewDetector(s.cfg)

	total, err := s.source.Scan(ctx, func(frame int, score float64) {
		det.Feed(frame, score)
	})
	if err != nil {
		return nil, err
	}

	scenes, err := BuildScenes(det.Boundaries(total), total, s.cfg.MinSceneLen)
	if err != nil {
		return nil, err
	}

	return &DetectResult{Scenes: scenes, TotalFrames: total}, nil
}

// RunResult is the outcome of a full detect-and-split run. Adapter
// failures are carried as fields rather than aborting each other: a stats
// failure never suppresses written clips, and vice versa.
type RunResult struct {
	Scenes      []Scene
	TotalFrames int

	Materialize    *MaterializeResult
	MaterializeErr error

	StatsPath string
	StatsErr  error
}

// Failed reports whether any adapter failed.
func (r *RunResult) Failed() bool {
	return r.MaterializeErr != nil || r.StatsErr != nil
}

// Run detects scenes on input and applies both output adapters per the
// config. Detection errors abort the run before any output; adapter
// errors are collected independently in the result.
func (s *Splitter) Run(ctx context.Context, input string, fps float64, statsPath string) (*RunResult, error) {
	detected, err := s.DetectScenes(ctx)
	if err != nil {
		return nil, err
	}

	res := &RunResult{
		Scenes:      detected.Scenes,
		TotalFrames: detected.TotalFrames,
		StatsPath:   statsPath,
	}

	if statsPath != "" {
		res.StatsErr = WriteStats(statsPath, detected.Scenes, fps)
	}

	res.Materialize, res.MaterializeErr = Materialize(
		ctx, s.writer, input, detected.Scenes, fps, s.cfg.OutputDir, s.cfg.DryRun)

	return res, nil
}
