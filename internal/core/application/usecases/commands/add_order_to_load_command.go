package commands

import (
	"errors"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/services"
	"consolidation/internal/pkg/guard"
)

var ErrAddOrderToLoadCommandIsNotConstructed = errors.New(
	"AddOrderToLoadCommand must be created via NewAddOrderToLoadCommand constructor",
)

// AddOrderToLoadCommand requests the addition of a single order to an
// already-formed load, subject to the same capacity and time-window checks
// the builder applies.
type AddOrderToLoadCommand struct { //nolint:recvcheck //using for validation
	loadID    kernel.UUID
	orderID   kernel.UUID
	overrides services.OptionOverrides

	guard guard.ConstructorGuard
}

// NewAddOrderToLoadCommand creates a command to add the given order to the
// given load. Both identifiers must be valid.
func NewAddOrderToLoadCommand(
	loadID kernel.UUID,
	orderID kernel.UUID,
	overrides services.OptionOverrides,
) (AddOrderToLoadCommand, error) {
	cmd := AddOrderToLoadCommand{
		overrides: overrides,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setLoadID(loadID), cmd.setOrderID(orderID)); err != nil {
		return AddOrderToLoadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddOrderToLoadCommandIsNotConstructed if validation fails.
func (c AddOrderToLoadCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderToLoadCommandIsNotConstructed)
}

// LoadID returns the identifier of the load gaining a member.
func (c AddOrderToLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// OrderID returns the identifier of the order being added.
func (c AddOrderToLoadCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Overrides returns the per-call threshold overrides.
func (c AddOrderToLoadCommand) Overrides() services.OptionOverrides {
	return c.overrides
}

func (c *AddOrderToLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}
	c.loadID = loadID
	return nil
}

func (c *AddOrderToLoadCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
