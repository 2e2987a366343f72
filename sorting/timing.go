package sorting

import (
	"time"

	"github.com/c360studio/escapetower/component"
)

// Measurement pairs a sort's own instrumentation with its elapsed time.
type Measurement struct {
	Result
	Elapsed time.Duration
}

// Seconds returns the elapsed time in seconds.
func (m Measurement) Seconds() float64 {
	return m.Elapsed.Seconds()
}

// Harness times sort runs against a single clock so results from
// different algorithms are comparable.
type Harness struct {
	now func() time.Time
}

// NewHarness returns a harness on the wall clock. time.Now carries a
// monotonic reading, so elapsed times are immune to clock steps.
func NewHarness() *Harness {
	return &Harness{now: time.Now}
}

// NewHarnessWithClock returns a harness reading time from now.
func NewHarnessWithClock(now func() time.Time) *Harness {
	if now == nil {
		now = time.Now
	}
	return &Harness{now: now}
}

// Measure runs alg over items and times only the sort call itself.
func (h *Harness) Measure(alg Func, items []component.Component) Measurement {
	start := h.now()
	r := alg(items)
	end := h.now()
	return Measurement{Result: r, Elapsed: end.Sub(start)}
}
