package splitter

import "errors"

// Error kinds returned by the splitting pipeline. Callers match with
// errors.Is to pick exit codes and messages; wrapped errors carry the
// path, frame index, or underlying cause.
var (
	// ErrSourceUnreadable means the input video could not be opened or decoded.
	ErrSourceUnreadable = errors.New("source unreadable")

	// ErrEmptyVideo means the input decoded to zero frames.
	ErrEmptyVideo = errors.New("empty video")

	// ErrDegenerateSceneList means the builder produced no scenes for a
	// non-empty video, which indicates a bug rather than bad input.
	ErrDegenerateSceneList = errors.New("degenerate scene list")

	// ErrOutputUnwritable means the clip output directory could not be
	// created or a clip write failed.
	ErrOutputUnwritable = errors.New("output unwritable")

	// ErrStatsWrite means the statistics CSV could not be written. It is
	// independent of clip materialization.
	ErrStatsWrite = errors.New("stats write failed")

	// ErrInvalidConfig means the detection configuration failed validation.
	ErrInvalidConfig = errors.New("invalid detection config")
)
