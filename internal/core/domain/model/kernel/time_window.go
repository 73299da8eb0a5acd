package kernel

import (
	"errors"
	"fmt"
	"time"

	"consolidation/internal/pkg/errs"
	"consolidation/internal/pkg/guard"
)

// ErrTimeWindowIsNotConstructed is returned when attempting to use an
// improperly initialized TimeWindow. Construct instances with NewTimeWindow
// or RestoreTimeWindow.
var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"time window must be created via NewTimeWindow or RestoreTimeWindow constructors")

// ErrTimeWindowEndBeforeStart indicates that a window's end precedes its start.
var ErrTimeWindowEndBeforeStart = errors.New("time window end must not be before start")

// TimeWindow is the interval [start, end] during which a delivery is expected.
// It is an immutable value object; the zero value is invalid.
//
// Example:
//
//	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
//	window, err := kernel.NewTimeWindow(start, start.Add(2*time.Hour))
//	if err != nil {
//	    // handle validation error
//	}
type TimeWindow struct { //nolint:recvcheck //using for validation
	start time.Time
	end   time.Time
	guard guard.ConstructorGuard
}

// NewTimeWindow creates a TimeWindow, rejecting zero instants and windows
// whose end precedes their start.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	window := TimeWindow{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(window.setStart(start), window.setEnd(end)); err != nil {
		return TimeWindow{}, err
	}

	if end.Before(start) {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause("time window", ErrTimeWindowEndBeforeStart)
	}

	return window, nil
}

// RestoreTimeWindow reconstructs a TimeWindow from persistence without the
// end-after-start check. Persisted data may carry degenerate windows; those
// yield zero overlap with everything rather than failing rehydration.
func RestoreTimeWindow(start, end time.Time) (TimeWindow, error) {
	window := TimeWindow{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(window.setStart(start), window.setEnd(end)); err != nil {
		return TimeWindow{}, err
	}

	return window, nil
}

// Validate checks that the TimeWindow was created through a constructor.
func (w TimeWindow) Validate() error {
	return w.guard.Validate(ErrTimeWindowIsNotConstructed)
}

// Start returns the opening instant of the window.
func (w TimeWindow) Start() time.Time {
	return w.start
}

// End returns the closing instant of the window.
func (w TimeWindow) End() time.Time {
	return w.end
}

// String returns an "[start, end]" representation for logs and conflict
// descriptions. Implements fmt.Stringer.
func (w TimeWindow) String() string {
	return fmt.Sprintf("[%s, %s]", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}

// OverlapMinutes returns the length of the intersection with other in minutes.
// The intersection runs from the later start to the earlier end; when that
// interval is empty (including degenerate windows whose end precedes their
// start) the overlap is 0.
func (w TimeWindow) OverlapMinutes(other TimeWindow) float64 {
	start := w.start
	if other.start.After(start) {
		start = other.start
	}

	end := w.end
	if other.end.Before(end) {
		end = other.end
	}

	if end.Before(start) {
		return 0
	}

	return end.Sub(start).Minutes()
}

// setStart sets the opening instant, rejecting the zero time.
func (w *TimeWindow) setStart(start time.Time) error {
	if start.IsZero() {
		return errs.NewValueIsRequiredError("time window start")
	}

	w.start = start
	return nil
}

// setEnd sets the closing instant, rejecting the zero time.
func (w *TimeWindow) setEnd(end time.Time) error {
	if end.IsZero() {
		return errs.NewValueIsRequiredError("time window end")
	}

	w.end = end
	return nil
}
