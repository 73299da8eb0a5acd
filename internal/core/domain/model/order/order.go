package order

import (
	"errors"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructors")

	// ErrStreetIsRequired indicates an empty delivery street address.
	ErrStreetIsRequired = errors.New("street is required")

	// ErrPackagesAreRequired indicates that an order carries no packages.
	ErrPackagesAreRequired = errors.New("order must contain at least one package")
)

// Order represents a single customer delivery request. It is the aggregate
// root owned by the order service; the consolidation core reads orders and
// moves them between Pending and Consolidated as loads are formed and
// adjusted.
//
// Invariants:
//   - Valid unique identifier and delivery address with geo coordinates
//   - At least one package; packages are immutable once the order is created
//   - Status transitions follow the order lifecycle state machine
//   - Instances exist only through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// street is the delivery street address
	street string

	// location is the geocoded delivery destination
	location kernel.GeoPoint

	// packages are the parcels travelling with this order
	packages []Package

	// timeWindow is the expected delivery interval (nil if unconstrained)
	timeWindow *kernel.TimeWindow

	// specialInstructions is optional free-text handling guidance
	specialInstructions string

	// status is the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an Order in Pending status. The identifier, location, and
// every package must be valid, and at least one package is required. A nil
// timeWindow means the delivery is unconstrained in time; empty
// specialInstructions mean none.
func NewOrder(
	id kernel.UUID,
	street string,
	location kernel.GeoPoint,
	packages []Package,
	timeWindow *kernel.TimeWindow,
	specialInstructions string,
) (*Order, error) {
	order := &Order{
		specialInstructions: specialInstructions,
		status:              Pending,
		isConstructed:       true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setStreet(street),
		order.setLocation(location),
		order.setPackages(packages),
		order.setTimeWindow(timeWindow),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, preserving its stored
// status. The same structural validations as NewOrder apply; the status must
// be a defined lifecycle state.
func RestoreOrder(
	id kernel.UUID,
	street string,
	location kernel.GeoPoint,
	packages []Package,
	timeWindow *kernel.TimeWindow,
	specialInstructions string,
	status Status,
) (*Order, error) {
	order, err := NewOrder(id, street, location, packages, timeWindow, specialInstructions)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	order.status = status
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Street returns the delivery street address.
func (o *Order) Street() string {
	return o.street
}

// Location returns the geocoded delivery destination.
func (o *Order) Location() kernel.GeoPoint {
	return o.location
}

// Packages returns a copy of the order's packages.
func (o *Order) Packages() []Package {
	packages := make([]Package, len(o.packages))
	copy(packages, o.packages)
	return packages
}

// TimeWindow returns the expected delivery interval, or nil when the order
// carries no time constraint.
func (o *Order) TimeWindow() *kernel.TimeWindow {
	if o.timeWindow == nil {
		return nil
	}

	window := *o.timeWindow
	return &window
}

// HasTimeWindow reports whether the order carries a delivery time constraint.
func (o *Order) HasTimeWindow() bool {
	return o.timeWindow != nil
}

// SpecialInstructions returns the free-text handling guidance, empty if none.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// HasSpecialInstructions reports whether the order carries handling guidance.
func (o *Order) HasSpecialInstructions() bool {
	return o.specialInstructions != ""
}

// Status returns the current lifecycle state of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalWeight returns the summed weight of the order's packages in kilograms.
func (o *Order) TotalWeight() float64 {
	return TotalWeight(o.packages)
}

// TotalVolume returns the summed volume of the order's packages in cubic meters.
func (o *Order) TotalVolume() float64 {
	return TotalVolume(o.packages)
}

// Consolidate marks the order as grouped into a load.
//
// Valid from Pending (first consolidation) and from Consolidated (the order
// is moved into a different load). Returns an error for any other state.
func (o *Order) Consolidate() error {
	newStatus, err := o.status.Consolidate()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Release returns the order to Pending after it was removed from a load.
// Only Consolidated orders can be released.
func (o *Order) Release() error {
	newStatus, err := o.status.Release()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setStreet validates and sets the delivery street address.
func (o *Order) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredErrorWithCause("street", ErrStreetIsRequired)
	}
	o.street = street
	return nil
}

// setLocation validates and sets the delivery destination.
func (o *Order) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}

// setPackages validates and stores a defensive copy of the packages.
func (o *Order) setPackages(packages []Package) error {
	if len(packages) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("packages", ErrPackagesAreRequired)
	}

	for _, pkg := range packages {
		if err := pkg.Validate(); err != nil {
			return err
		}
	}

	o.packages = make([]Package, len(packages))
	copy(o.packages, packages)
	return nil
}

// setTimeWindow validates and stores the optional delivery interval.
func (o *Order) setTimeWindow(timeWindow *kernel.TimeWindow) error {
	if timeWindow == nil {
		return nil
	}

	if err := timeWindow.Validate(); err != nil {
		return err
	}

	window := *timeWindow
	o.timeWindow = &window
	return nil
}
