package splitter

// rollingWindow is a fixed-capacity FIFO of recent content scores. A ring
// buffer with a write cursor keeps memory bounded to the window size and
// avoids reallocation on every frame.
type rollingWindow struct {
	buf  []float64
	next int
	size int
	sum  float64
}

func newRollingWindow(capacity int) *rollingWindow {
	return &rollingWindow{buf: make([]float64, capacity)}
}

// push appends a score, evicting the oldest once the window is full.
func (w *rollingWindow) push(v float64) {
	if w.size == len(w.buf) {
		w.sum -= w.buf[w.next]
	} else {
		w.size++
	}
	w.buf[w.next] = v
	w.sum += v
	w.next = (w.next + 1) % len(w.buf)
}

// mean returns the arithmetic mean of the held scores, or 0 when empty.
func (w *rollingWindow) mean() float64 {
	if w.size == 0 {
		return 0
	}
	return w.sum / float64(w.size)
}

func (w *rollingWindow) len() int {
	return w.size
}
