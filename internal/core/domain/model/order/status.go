package order

import (
	"fmt"

	"consolidation/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
//
// The full lifecycle spans several services; this core owns only the
// transition between Pending and Consolidated:
//
//	Pending <──> Consolidated ──> Assigned ──> Routed ──> Dispatched ──> InTransit ──> Delivered
//	                                                                          │
//	                                                                          └──> Failed
//	(Cancelled can be reached from any non-final state by the order service)
//
// Downstream transitions (Assigned and later) belong to the dispatch and
// routing services; they are represented here so persisted orders in any
// state can be rehydrated, but no method on this type performs them.
type Status int

const (
	// Unknown represents an invalid or undefined status. The zero value helps
	// catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order awaits consolidation into a load.
	Pending

	// Consolidated indicates the order has been grouped into a load.
	Consolidated

	// Assigned indicates a vehicle has been assigned to the order's load.
	Assigned

	// Routed indicates the order's load has a planned route.
	Routed

	// Dispatched indicates the order's load has left the depot.
	Dispatched

	// InTransit indicates the order is on its way to the customer.
	InTransit

	// Delivered indicates the order reached the customer. Final state.
	Delivered

	// Failed indicates the delivery attempt failed. Final state.
	Failed

	// Cancelled indicates the order was cancelled. Final state.
	Cancelled
)

// getStatusStrings returns string representations for all statuses,
// including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "Unknown",
		Pending:      "Pending",
		Consolidated: "Consolidated",
		Assigned:     "Assigned",
		Routed:       "Routed",
		Dispatched:   "Dispatched",
		InTransit:    "InTransit",
		Delivered:    "Delivered",
		Failed:       "Failed",
		Cancelled:    "Cancelled",
	}
}

// getValidStatusStrings returns only valid statuses, supporting validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:      "Pending",
		Consolidated: "Consolidated",
		Assigned:     "Assigned",
		Routed:       "Routed",
		Dispatched:   "Dispatched",
		InTransit:    "InTransit",
		Delivered:    "Delivered",
		Failed:       "Failed",
		Cancelled:    "Cancelled",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
// Unknown and out-of-range values are invalid.
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

// ValidateConsolidate checks whether the status allows consolidation without
// performing the transition. Pending orders can be consolidated; Consolidated
// orders can be re-consolidated when moved between loads.
func (s Status) ValidateConsolidate() error {
	if s != Pending && s != Consolidated {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to consolidate", s.String()),
		)
	}
	return nil
}

// Consolidate transitions the status to Consolidated.
//
// Valid transitions:
//   - Pending -> Consolidated (order claimed into a load)
//   - Consolidated -> Consolidated (order moved between loads)
func (s Status) Consolidate() (Status, error) {
	if err := s.ValidateConsolidate(); err != nil {
		return 0, err
	}

	return Consolidated, nil
}

// Release transitions the status back to Pending when an order is removed
// from a load. Only Consolidated orders can be released.
func (s Status) Release() (Status, error) {
	if s != Consolidated {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to release", s.String()),
		)
	}

	return Pending, nil
}
