// Package observe defines the single extension point the search engine
// exposes to renderers and monitors.
//
// The engine calls a Hook synchronously after every finalized cell and once
// more after it clears its transient marks. It does not continue until the
// hook returns, so a hook may block (draw a frame, sleep, emit over the
// network) to pace the run. Hooks never run concurrently and are never
// reordered relative to the finalize sequence.
package observe

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// Snapshot is what a hook sees at one step.
type Snapshot struct {
	// Grid is the live board. It is only valid for the duration of the call.
	Grid *grid.Grid
	// Current is the cell that was just finalized; nil on the final pass.
	Current *grid.Cell
	// Step counts finalized cells so far, starting at 1.
	Step int
	// Final is set on the call made after marks were cleared.
	Final bool
}

// Hook receives snapshots. Its return is not consumed.
type Hook func(Snapshot)

// Nop ignores every snapshot.
func Nop(Snapshot) {}

// Chain returns a hook that calls each non-nil hook in order.
func Chain(hooks ...Hook) Hook {
	var live []Hook
	for _, h := range hooks {
		if h != nil {
			live = append(live, h)
		}
	}
	switch len(live) {
	case 0:
		return Nop
	case 1:
		return live[0]
	}

	return func(s Snapshot) {
		for _, h := range live {
			h(s)
		}
	}
}

// Delay calls next and then sleeps for d, giving the viewer time to see
// each frame.
func Delay(d time.Duration, next Hook) Hook {
	if next == nil {
		next = Nop
	}

	return func(s Snapshot) {
		next(s)
		if d > 0 {
			time.Sleep(d)
		}
	}
}

// Log returns a hook that writes one debug record per snapshot.
func Log(logger *slog.Logger) Hook {
	return func(s Snapshot) {
		if s.Final {
			logger.Debug("search marks cleared", "steps", s.Step)
			return
		}
		logger.Debug("cell finalized",
			"step", s.Step,
			"cell", s.Current.Coord().String(),
			"distance", s.Current.Distance,
		)
	}
}
