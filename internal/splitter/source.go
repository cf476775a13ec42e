package splitter

import (
	"context"
	"fmt"

	"github.com/tecxbro/videoreimagine/internal/ffmpeg"
)

// ScoreSource streams the per-transition content scores of a video in a
// single forward pass. Implementations own the decoder handle for the
// duration of Scan and release it on every exit path; the stream is not
// restartable without a fresh Scan.
type ScoreSource interface {
	// Scan calls fn once per frame after the first, in frame order, and
	// returns the total frame count of the video.
	Scan(ctx context.Context, fn func(frame int, score float64)) (totalFrames int, err error)
}

// FFmpegSource extracts scores by decoding the video through the ffmpeg
// executor. The metric is ffmpeg's scene change score, a normalized sum of
// absolute differences between consecutive frames, which is deterministic
// for a given input.
type FFmpegSource struct {
	exec *ffmpeg.Executor
	path string
}

// NewFFmpegSource returns a source reading the video at path.
func NewFFmpegSource(exec *ffmpeg.Executor, path string) *FFmpegSource {
	return &FFmpegSource{exec: exec, path: path}
}

// Scan implements ScoreSource.
func (s *FFmpegSource) Scan(ctx context.Context, fn func(frame int, score float64)) (int, error) {
	total, err := s.exec.ScanSceneScores(ctx, s.path, fn)
	if err != nil {
		if ctx.Err() != nil {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %s: %w", ErrSourceUnreadable, s.path, err)
	}
	if total == 0 {
		return 0, fmt.Errorf("%w: %s", ErrEmptyVideo, s.path)
	}
	return total, nil
}
