package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bounds(frames ...int) []Boundary {
	out := make([]Boundary, len(frames))
	for i, f := range frames {
		out[i] = Boundary{Frame: f}
	}
	return out
}

// assertCoverage checks the scenes tile [0, totalFrames) exactly.
func assertCoverage(t *testing.T, scenes []Scene, totalFrames int) {
	t.Helper()
	require.NotEmpty(t, scenes)
	assert.Equal(t, 0, scenes[0].StartFrame)
	assert.Equal(t, totalFrames, scenes[len(scenes)-1].EndFrame)
	for i := 1; i < len(scenes); i++ {
		assert.Equal(t, scenes[i-1].EndFrame, scenes[i].StartFrame)
		assert.Greater(t, scenes[i].StartFrame, scenes[i-1].StartFrame)
	}
}

func TestBuildScenesTwoScenes(t *testing.T) {
	scenes, err := BuildScenes(bounds(0, 100, 200), 200, 15)
	require.NoError(t, err)
	require.Len(t, scenes, 2)

	assert.Equal(t, Scene{Index: 1, StartFrame: 0, EndFrame: 100}, scenes[0])
	assert.Equal(t, Scene{Index: 2, StartFrame: 100, EndFrame: 200}, scenes[1])
	assertCoverage(t, scenes, 200)
}

func TestBuildScenesTrailingShortSceneMerged(t *testing.T) {
	// The forced terminal boundary leaves a 5-frame tail; it folds into
	// the preceding scene.
	scenes, err := BuildScenes(bounds(0, 100, 195, 200), 200, 15)
	require.NoError(t, err)
	require.Len(t, scenes, 2)

	assert.Equal(t, 100, scenes[1].StartFrame)
	assert.Equal(t, 200, scenes[1].EndFrame)
	assertCoverage(t, scenes, 200)

	for _, s := range scenes[1:] {
		assert.GreaterOrEqual(t, s.DurationFrames(), 15)
	}
}

func TestBuildScenesFirstSceneMayBeShort(t *testing.T) {
	// A video shorter than the minimum still yields exactly one scene.
	scenes, err := BuildScenes(bounds(0, 10), 10, 15)
	require.NoError(t, err)
	require.Len(t, scenes, 1)
	assert.Equal(t, 10, scenes[0].DurationFrames())
	assertCoverage(t, scenes, 10)
}

func TestBuildScenesIndexesAfterMerge(t *testing.T) {
	scenes, err := BuildScenes(bounds(0, 50, 95, 100), 100, 15)
	require.NoError(t, err)
	require.Len(t, scenes, 2)
	assert.Equal(t, 1, scenes[0].Index)
	assert.Equal(t, 2, scenes[1].Index)
}

func TestBuildScenesEmptyVideo(t *testing.T) {
	_, err := BuildScenes(bounds(0, 0), 0, 15)
	assert.ErrorIs(t, err, ErrEmptyVideo)
}

func TestBuildScenesNonIncreasingBoundaries(t *testing.T) {
	_, err := BuildScenes(bounds(0, 100, 100, 200), 200, 15)
	assert.ErrorIs(t, err, ErrDegenerateSceneList)
}

func TestBuildScenesCarriesTriggerScore(t *testing.T) {
	in := []Boundary{{Frame: 0}, {Frame: 100, Score: 0.87}, {Frame: 200}}
	scenes, err := BuildScenes(in, 200, 15)
	require.NoError(t, err)
	require.Len(t, scenes, 2)
	assert.Equal(t, 0.0, scenes[0].Score)
	assert.Equal(t, 0.87, scenes[1].Score)
}

func TestSceneTimes(t *testing.T) {
	s := Scene{Index: 1, StartFrame: 30, EndFrame: 90}
	assert.InDelta(t, 1.0, s.StartTime(30).Seconds(), 1e-9)
	assert.InDelta(t, 3.0, s.EndTime(30).Seconds(), 1e-9)
	assert.Equal(t, 60, s.DurationFrames())
}
