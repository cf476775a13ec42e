package splitter

import (
	"fmt"
	"time"

	"github.com/tecxbro/videoreimagine/pkg/util"
)

// Scene is a contiguous half-open frame interval [StartFrame, EndFrame).
// Scenes are immutable once built; together they cover the whole video
// with no gaps or overlaps.
type Scene struct {
	// Index is 1-based, matching clip numbering on disk.
	Index      int
	StartFrame int
	EndFrame   int

	// Score is the content score that opened this scene; zero for the
	// first scene and for scenes created by merging.
	Score float64
}

// DurationFrames returns the scene length in frames.
func (s Scene) DurationFrames() int {
	return s.EndFrame - s.StartFrame
}

// StartTime returns the scene start as a timestamp at the given frame rate.
func (s Scene) StartTime(fps float64) time.Duration {
	return util.FrameToDuration(s.StartFrame, fps)
}

// EndTime returns the scene end as a timestamp at the given frame rate.
func (s Scene) EndTime(fps float64) time.Duration {
	return util.FrameToDuration(s.EndFrame, fps)
}

// BuildScenes converts the finalized boundary sequence into the scene list.
// A raw scene shorter than minSceneLen merges into its predecessor, which
// can only happen at the forced terminal boundary; the detector enforces
// the minimum everywhere else. Only the very first scene may end up short.
func BuildScenes(boundaries []Boundary, totalFrames, minSceneLen int) ([]Scene, error) {
	if totalFrames <= 0 {
		return nil, fmt.Errorf("%w: %d total frames", ErrEmptyVideo, totalFrames)
	}

	var scenes []Scene
	for i := 0; i+1 < len(boundaries); i++ {
		start, end := boundaries[i].Frame, boundaries[i+1].Frame
		if end <= start {
			return nil, fmt.Errorf("%w: boundary %d not after %d", ErrDegenerateSceneList, end, start)
		}

		if end-start < minSceneLen && len(scenes) > 0 {
			scenes[len(scenes)-1].EndFrame = end
			continue
		}

		scenes = append(scenes, Scene{
			Index:      len(scenes) + 1,
			StartFrame: start,
			EndFrame:   end,
			Score:      boundaries[i].Score,
		})
	}

	if len(scenes) < 1 {
		return nil, fmt.Errorf("%w: no scenes for %d frames", ErrDegenerateSceneList, totalFrames)
	}
	if scenes[0].StartFrame != 0 || scenes[len(scenes)-1].EndFrame != totalFrames {
		return nil, fmt.Errorf("%w: scenes cover [%d,%d), want [0,%d)",
			ErrDegenerateSceneList, scenes[0].StartFrame, scenes[len(scenes)-1].EndFrame, totalFrames)
	}

	return scenes, nil
}
