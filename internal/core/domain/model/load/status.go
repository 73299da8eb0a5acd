package load

import (
	"fmt"

	"consolidation/internal/pkg/errs"
)

// Status represents the lifecycle state of a load.
//
// State transitions owned by this core:
//
//	Pending ──> Consolidated
//
// Later transitions (Assigned, Dispatched, Completed) belong to the dispatch
// service; they are represented here so persisted loads can be rehydrated and
// listed, but no method on this type performs them.
type Status int

const (
	// Unknown represents an invalid or undefined status. The zero value helps
	// catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a load being accumulated.
	Pending

	// Consolidated indicates the load has been finalized by the builder.
	Consolidated

	// Assigned indicates a vehicle has been assigned to the load.
	Assigned

	// Dispatched indicates the load has left the depot.
	Dispatched

	// Completed indicates all deliveries of the load finished. Final state.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "Unknown",
		Pending:      "Pending",
		Consolidated: "Consolidated",
		Assigned:     "Assigned",
		Dispatched:   "Dispatched",
		Completed:    "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:      "Pending",
		Consolidated: "Consolidated",
		Assigned:     "Assigned",
		Dispatched:   "Dispatched",
		Completed:    "Completed",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Consolidate transitions the status to Consolidated.
//
// Valid transitions:
//   - Pending -> Consolidated (load finalized by the builder)
func (s Status) Consolidate() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to consolidate", s.String()),
		)
	}

	return Consolidated, nil
}
