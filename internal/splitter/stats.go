package splitter

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/tecxbro/videoreimagine/pkg/util"
)

var statsHeader = []string{
	"scene_index",
	"start_frame",
	"end_frame",
	"duration_frames",
	"start_time_s",
	"end_time_s",
}

// WriteStats serializes one CSV row per scene to path. The header is
// written even for an empty scene list. Failures wrap ErrStatsWrite and
// never affect clip materialization.
func WriteStats(path string, scenes []Scene, fps float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrStatsWrite, path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(statsHeader); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrStatsWrite, path, err)
	}

	for _, s := range scenes {
		row := []string{
			strconv.Itoa(s.Index),
			strconv.Itoa(s.StartFrame),
			strconv.Itoa(s.EndFrame),
			strconv.Itoa(s.DurationFrames()),
			strconv.FormatFloat(util.FrameToSeconds(s.StartFrame, fps), 'f', 3, 64),
			strconv.FormatFloat(util.FrameToSeconds(s.EndFrame, fps), 'f', 3, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrStatsWrite, path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrStatsWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrStatsWrite, path, err)
	}
	return nil
}
