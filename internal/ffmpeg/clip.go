package ffmpeg

import (
	"context"
	"fmt"
	"time"

	"github.com/tecxbro/videoreimagine/pkg/util"
)

// ClipOptions defines clip extraction parameters
type ClipOptions struct {
	Start        time.Duration
	End          time.Duration
	Output       string
	VideoCodec   string
	AudioCodec   string
	CRF          int // Quality (0-51, lower = better)
	Preset       string
	ProgressFunc ProgressFunc
}

// ExtractClip cuts a segment from a video. Output seeking (-ss after -i)
// re-encodes, which keeps the cut frame-accurate at scene boundaries.
func (e *Executor) ExtractClip(ctx context.Context, input string, opts ClipOptions) error {
	duration := opts.End - opts.Start
	if duration <= 0 {
		return fmt.Errorf("invalid clip duration: end must be after start")
	}

	e.logger.Info().
		Str("input", input).
		Str("output", opts.Output).
		Dur("start", opts.Start).
		Dur("duration", duration).
		Msg("extracting clip")

	codec := opts.VideoCodec
	if codec == "" {
		codec = DefaultVideoCodec
	}
	audioCodec := opts.AudioCodec
	if audioCodec == "" {
		audioCodec = DefaultAudioCodec
	}
	crf := opts.CRF
	if crf == 0 {
		crf = DefaultCRF
	}
	preset := opts.Preset
	if preset == "" {
		preset = DefaultPreset
	}

	args := []string{
		"-i", input,
		"-ss", util.FormatDuration(opts.Start),
		"-t", util.FormatDuration(duration),
		"-c:v", codec,
		"-c:a", audioCodec,
		"-crf", fmt.Sprintf("%d", crf),
		"-preset", preset,
		opts.Output,
	}

	runOpts := RunOptions{
		Args:            args,
		ProgressHandler: opts.ProgressFunc,
		LogHandler: func(line string) {
			e.logger.Debug().Str("ffmpeg", line).Msg("clip extraction")
		},
	}

	if err := e.Run(ctx, runOpts); err != nil {
		return fmt.Errorf("clip extraction failed: %w", err)
	}

	e.logger.Info().Str("output", opts.Output).Msg("clip extraction complete")
	return nil
}
