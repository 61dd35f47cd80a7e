package app

import "time"

// FrameRing is a circular buffer of recent frame timestamps, used to report
// the frame rate actually achieved.
type FrameRing struct {
	buf   []time.Time
	pos   int
	count int
}

// NewFrameRing creates a new circular buffer with the given capacity.
func NewFrameRing(capacity int) *FrameRing {
	if capacity < 2 {
		capacity = 2
	}
	return &FrameRing{
		buf: make([]time.Time, capacity),
	}
}

// Push records a frame timestamp.
func (r *FrameRing) Push(t time.Time) {
	r.buf[r.pos] = t
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// oldest returns the earliest stored timestamp.
func (r *FrameRing) oldest() time.Time {
	if r.count < len(r.buf) {
		return r.buf[0]
	}
	return r.buf[r.pos]
}

// Last returns the most recent timestamp, or the zero time if empty.
func (r *FrameRing) Last() time.Time {
	if r.count == 0 {
		return time.Time{}
	}
	idx := (r.pos - 1 + len(r.buf)) % len(r.buf)
	return r.buf[idx]
}

// FPS returns the average frame rate over the stored window, or 0 with
// fewer than two samples.
func (r *FrameRing) FPS() float64 {
	if r.count < 2 {
		return 0
	}
	span := r.Last().Sub(r.oldest())
	if span <= 0 {
		return 0
	}
	return float64(r.count-1) / span.Seconds()
}

// Len returns the number of stored timestamps.
func (r *FrameRing) Len() int {
	return r.count
}
