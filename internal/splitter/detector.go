package splitter

// Boundary marks the first frame of a new scene and the content score that
// triggered it. The initial boundary at frame 0 and the terminal boundary
// at the total frame count carry a zero score.
type Boundary struct {
	Frame int
	Score float64
}

type detectorState int

const (
	// stateScanning accepts new boundaries.
	stateScanning detectorState = iota
	// stateCooldown suppresses boundaries until the minimum scene length
	// has elapsed, but never suppresses window updates.
	stateCooldown
)

// Detector locates scene boundaries by comparing each frame's content score
// against the rolling mean of the preceding scores. A frame becomes a
// boundary when score > mean * threshold and the previous boundary is at
// least MinSceneLen frames behind.
type Detector struct {
	cfg        Config
	window     *rollingWindow
	state      detectorState
	last       int
	boundaries []Boundary
}

// NewDetector returns a detector primed with the implicit boundary at
// frame 0. The config must already be validated.
func NewDetector(cfg Config) *Detector {
	return &Detector{
		cfg:        cfg,
		window:     newRollingWindow(cfg.Window),
		state:      stateCooldown,
		boundaries: []Boundary{{Frame: 0}},
	}
}

// Feed consumes the content score attached to the transition into frame.
// Frames must be fed in strictly increasing order, starting at 1. Returns
// true when the frame was recorded as a scene boundary.
//
// A candidate rejected only for minimum scene length does not reset the
// window: the score still enters the rolling history so a later spike is
// judged against the same local volatility.
func (d *Detector) Feed(frame int, score float64) bool {
	if d.state == stateCooldown && frame-d.last >= d.cfg.MinSceneLen {
		d.state = stateScanning
	}

	// With an empty window the mean is 0, so any positive score is a
	// candidate; the boundary at frame 0 exists regardless.
	candidate := score > d.window.mean()*d.cfg.Threshold

	accepted := false
	if candidate && d.state == stateScanning {
		d.boundaries = append(d.boundaries, Boundary{Frame: frame, Score: score})
		d.last = frame
		d.state = stateCooldown
		accepted = true
	}

	d.window.push(score)
	return accepted
}

// Boundaries finalizes detection once the source is exhausted, closing the
// last scene with an implicit boundary at totalFrames. The result is
// strictly increasing, starts at 0, and ends at totalFrames.
func (d *Detector) Boundaries(totalFrames int) []Boundary {
	out := make([]Boundary, 0, len(d.boundaries)+1)
	for _, b := range d.boundaries {
		if b.Frame < totalFrames {
			out = append(out, b)
		}
	}
	out = append(out, Boundary{Frame: totalFrames})
	return out
}
