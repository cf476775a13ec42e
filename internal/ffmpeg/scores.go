package ffmpeg

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// ScanSceneScores decodes the video once and reports ffmpeg's scene change
// score for every frame transition, in decode order. The score attached to
// frame i measures dissimilarity against frame i-1; frame 0 carries no
// transition and is not reported. Returns the total number of frames seen.
//
// The scan holds the decoder for the whole pass and is not restartable;
// callers rescan by calling again.
func (e *Executor) ScanSceneScores(ctx context.Context, input string, fn func(frame int, score float64)) (int, error) {
	e.logger.Info().
		Str("input", input).
		Msg("scanning frame scores")

	parser := newScoreParser(fn)

	opts := RunOptions{
		Args: []string{
			"-i", input,
			"-vf", "select='gte(scene,0)',metadata=print:file=-",
			"-f", "null",
			"-",
		},
		StdoutHandler: parser.feed,
		LogHandler: func(line string) {
			e.logger.Debug().Str("stderr", line).Msg("score scan output")
		},
	}

	if err := e.Run(ctx, opts); err != nil {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		return 0, fmt.Errorf("frame score scan failed: %w", err)
	}

	e.logger.Info().
		Int("frames", parser.frames).
		Msg("frame score scan complete")

	return parser.frames, nil
}

// scoreParser consumes the metadata filter's print output. Each frame
// produces a "frame:N ..." line followed by "lavfi.scene_score=V".
type scoreParser struct {
	frames  int
	current int
	pending bool
	emit    func(frame int, score float64)
}

func newScoreParser(emit func(frame int, score float64)) *scoreParser {
	return &scoreParser{current: -1, emit: emit}
}

func (p *scoreParser) feed(line string) {
	line = strings.TrimSpace(line)

	if strings.HasPrefix(line, "frame:") {
		fields := strings.Fields(line)
		idxStr := strings.TrimPrefix(fields[0], "frame:")
		idx, err := strconv.Atoi(idxStr)
		if err != nil {
			return
		}
		p.current = idx
		p.pending = true
		if idx+1 > p.frames {
			p.frames = idx + 1
		}
		return
	}

	if !p.pending {
		return
	}

	if val, ok := strings.CutPrefix(line, "lavfi.scene_score="); ok {
		p.pending = false
		score, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return
		}
		// Frame 0 has no prior frame; its score is meaningless.
		if p.current >= 1 && p.emit != nil {
			p.emit(p.current, score)
		}
	}
}
