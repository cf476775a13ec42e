package splitter

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/tecxbro/videoreimagine/internal/ffmpeg"
	"github.com/tecxbro/videoreimagine/pkg/util"
)

// ClipWriter writes one sub-clip of the source video.
type ClipWriter interface {
	WriteClip(ctx context.Context, input string, start, end time.Duration, output string) error
}

// MaterializeResult reports what exists on disk after a materialization
// run. On failure it still lists the clips written before the failure, so
// callers know exactly which scenes survived.
type MaterializeResult struct {
	// SceneCount is the number of scenes the run covered.
	SceneCount int

	// Written lists clip paths created, in scene order. Empty on dry
	// runs, which otherwise return the same result shape as real runs.
	Written []string
}

// Materialize writes one clip per scene into outputDir, named
// <stem>-Scene-NNN.mp4 by scene index. In dry-run mode nothing touches
// disk but the result shape is identical to a real run.
//
// A failing scene aborts the remaining writes; the returned result is
// valid alongside the error and lists the clips already written.
func Materialize(ctx context.Context, w ClipWriter, input string, scenes []Scene, fps float64, outputDir string, dryRun bool) (*MaterializeResult, error) {
	res := &MaterializeResult{SceneCount: len(scenes)}

	if dryRun {
		return res, nil
	}

	if err := util.EnsureDir(outputDir); err != nil {
		return res, fmt.Errorf("%w: creating %s: %w", ErrOutputUnwritable, outputDir, err)
	}

	stem := util.Stem(input)
	for _, scene := range scenes {
		output := filepath.Join(outputDir, fmt.Sprintf("%s-Scene-%03d.mp4", stem, scene.Index))
		if err := w.WriteClip(ctx, input, scene.StartTime(fps), scene.EndTime(fps), output); err != nil {
			return res, fmt.Errorf("%w: scene %d (frames %d-%d): %w",
				ErrOutputUnwritable, scene.Index, scene.StartFrame, scene.EndFrame, err)
		}
		res.Written = append(res.Written, output)
	}

	return res, nil
}

// ExecutorClipWriter adapts the ffmpeg executor to the ClipWriter interface.
type ExecutorClipWriter struct {
	Exec       *ffmpeg.Executor
	VideoCodec string
	AudioCodec string
	CRF        int
	Preset     string
}

// WriteClip implements ClipWriter.
func (w *ExecutorClipWriter) WriteClip(ctx context.Context, input string, start, end time.Duration, output string) error {
	return w.Exec.ExtractClip(ctx, input, ffmpeg.ClipOptions{
		Start:      start,
		End:        end,
		Output:     output,
		VideoCodec: w.VideoCodec,
		AudioCodec: w.AudioCodec,
		CRF:        w.CRF,
		Preset:     w.Preset,
	})
}
