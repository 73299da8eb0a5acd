package load

import (
	"errors"

	"consolidation/internal/core/domain/model/kernel"
)

var (
	// ErrLoadIsNotConstructed is returned when a Load instance was not created
	// through the NewLoad or RestoreLoad factory functions.
	ErrLoadIsNotConstructed = errors.New("Load must be created via NewLoad or RestoreLoad constructors")

	// ErrOrderAlreadyInLoad indicates an attempt to add an order id that is
	// already a member of the load.
	ErrOrderAlreadyInLoad = errors.New("order is already part of this load")

	// ErrOrderNotInLoad indicates an attempt to remove an order id that is not
	// a member of the load.
	ErrOrderNotInLoad = errors.New("order is not part of this load")
)

// Load represents a group of orders destined to travel together on one
// vehicle. It is the aggregate root of the consolidation core.
//
// The load tracks its member order ids in insertion order together with the
// running totals of their weight and volume. The invariant is that the totals
// equal the sum of the member orders' package metrics; it is violated only
// transiently inside a mutation and restored by the mutation's end. Removal
// floors the totals at zero to guard against drift from earlier inconsistent
// state.
//
// Example:
//
//	l, _ := load.NewLoad(kernel.NewUUID())
//	if err := l.AddOrder(orderID, o.TotalWeight(), o.TotalVolume()); err != nil {
//	    return err
//	}
//	if err := l.Consolidate(); err != nil {
//	    return err
//	}
type Load struct {
	// id is the unique identifier for the load
	id kernel.UUID

	// orderIDs are the member orders in insertion order
	orderIDs []kernel.UUID

	// totalWeight is the summed weight of all member orders in kilograms
	totalWeight float64

	// totalVolume is the summed volume of all member orders in cubic meters
	totalVolume float64

	// status is the current state in the load lifecycle
	status Status

	// isConstructed ensures the load was created via a constructor
	isConstructed bool
}

// NewLoad creates an empty Load in Pending status, ready to accumulate orders.
func NewLoad(id kernel.UUID) (*Load, error) {
	l := &Load{
		status:        Pending,
		isConstructed: true,
	}

	if err := l.setID(id); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLoad reconstructs a Load from persistence, preserving member ids,
// totals, and status. Every member id and the status must be valid.
func RestoreLoad(
	id kernel.UUID,
	orderIDs []kernel.UUID,
	totalWeight float64,
	totalVolume float64,
	status Status,
) (*Load, error) {
	l, err := NewLoad(id)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	for _, orderID := range orderIDs {
		if err = orderID.Validate(); err != nil {
			return nil, err
		}
	}

	l.orderIDs = make([]kernel.UUID, len(orderIDs))
	copy(l.orderIDs, orderIDs)
	l.totalWeight = totalWeight
	l.totalVolume = totalVolume
	l.status = status
	return l, nil
}

// Validate ensures the Load instance was properly constructed.
// Returns ErrLoadIsNotConstructed otherwise.
func (l *Load) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLoadIsNotConstructed
	}

	return nil
}

// IsEqual compares two loads by identity.
func (l *Load) IsEqual(other *Load) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the load's unique identifier.
func (l *Load) ID() kernel.UUID {
	return l.id
}

// OrderIDs returns a copy of the member order ids in insertion order.
func (l *Load) OrderIDs() []kernel.UUID {
	orderIDs := make([]kernel.UUID, len(l.orderIDs))
	copy(orderIDs, l.orderIDs)
	return orderIDs
}

// OrderCount returns the number of member orders.
func (l *Load) OrderCount() int {
	return len(l.orderIDs)
}

// IsEmpty reports whether the load has no member orders.
func (l *Load) IsEmpty() bool {
	return len(l.orderIDs) == 0
}

// TotalWeight returns the summed weight of the member orders in kilograms.
func (l *Load) TotalWeight() float64 {
	return l.totalWeight
}

// TotalVolume returns the summed volume of the member orders in cubic meters.
func (l *Load) TotalVolume() float64 {
	return l.totalVolume
}

// Status returns the current lifecycle state of the load.
func (l *Load) Status() Status {
	return l.status
}

// Contains reports whether the given order id is a member of the load.
func (l *Load) Contains(orderID kernel.UUID) bool {
	for _, id := range l.orderIDs {
		if id.IsEqual(orderID) {
			return true
		}
	}
	return false
}

// AddOrder appends the order id and adds its weight and volume to the running
// totals. The id must be valid and not already a member; capacity policy is
// the caller's responsibility.
func (l *Load) AddOrder(orderID kernel.UUID, weightKg, volumeM3 float64) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	if l.Contains(orderID) {
		return ErrOrderAlreadyInLoad
	}

	l.orderIDs = append(l.orderIDs, orderID)
	l.totalWeight += weightKg
	l.totalVolume += volumeM3
	return nil
}

// RemoveOrder drops the order id and subtracts its weight and volume from the
// running totals, flooring both at zero. Returns ErrOrderNotInLoad when the
// id is not a member.
func (l *Load) RemoveOrder(orderID kernel.UUID, weightKg, volumeM3 float64) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	idx := -1
	for i, id := range l.orderIDs {
		if id.IsEqual(orderID) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrOrderNotInLoad
	}

	l.orderIDs = append(l.orderIDs[:idx], l.orderIDs[idx+1:]...)
	l.totalWeight = max(0, l.totalWeight-weightKg)
	l.totalVolume = max(0, l.totalVolume-volumeM3)
	return nil
}

// Consolidate finalizes the load, transitioning it from Pending to
// Consolidated.
func (l *Load) Consolidate() error {
	newStatus, err := l.status.Consolidate()
	if err != nil {
		return err
	}

	l.status = newStatus
	return nil
}

// setID validates and sets the load's unique identifier.
func (l *Load) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}
