package observe

import (
	"sync"

	"github.com/katalvlaran/gridpath/grid"
)

// Frame is a self-contained copy of a snapshot's observable state, safe to
// keep after the hook returns and ready to encode as JSON.
type Frame struct {
	Step    int          `json:"step"`
	Current *grid.Coord  `json:"current,omitempty"`
	Open    []grid.Coord `json:"open,omitempty"`
	Closed  []grid.Coord `json:"closed,omitempty"`
	Final   bool         `json:"final,omitempty"`
}

// Capture copies the open and closed sets out of s.
// Complexity: O(Size²).
func Capture(s Snapshot) Frame {
	f := Frame{Step: s.Step, Final: s.Final}
	if s.Current != nil {
		c := s.Current.Coord()
		f.Current = &c
	}
	if s.Grid == nil {
		return f
	}
	for _, c := range s.Grid.Cells() {
		switch c.Mark {
		case grid.MarkOpen:
			f.Open = append(f.Open, c.Coord())
		case grid.MarkClosed:
			f.Closed = append(f.Closed, c.Coord())
		}
	}

	return f
}

// Recorder keeps every frame it observes. Use its Observe method as a Hook.
type Recorder struct {
	mu     sync.Mutex
	frames []Frame
}

// Observe captures s.
func (r *Recorder) Observe(s Snapshot) {
	f := Capture(s)
	r.mu.Lock()
	r.frames = append(r.frames, f)
	r.mu.Unlock()
}

// Frames returns a copy of the recorded frames.
func (r *Recorder) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Frame(nil), r.frames...)
}

// Reset drops recorded frames.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.frames = nil
	r.mu.Unlock()
}
