package commands

import (
	"errors"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/guard"
)

var ErrRemoveOrderFromLoadCommandIsNotConstructed = errors.New(
	"RemoveOrderFromLoadCommand must be created via NewRemoveOrderFromLoadCommand constructor",
)

// RemoveOrderFromLoadCommand requests the removal of a single order from a
// load, releasing the order back to the pending pool.
type RemoveOrderFromLoadCommand struct { //nolint:recvcheck //using for validation
	loadID  kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOrderFromLoadCommand creates a command to remove the given order
// from the given load. Both identifiers must be valid.
func NewRemoveOrderFromLoadCommand(loadID, orderID kernel.UUID) (RemoveOrderFromLoadCommand, error) {
	cmd := RemoveOrderFromLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setLoadID(loadID), cmd.setOrderID(orderID)); err != nil {
		return RemoveOrderFromLoadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveOrderFromLoadCommandIsNotConstructed if validation fails.
func (c RemoveOrderFromLoadCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderFromLoadCommandIsNotConstructed)
}

// LoadID returns the identifier of the load losing a member.
func (c RemoveOrderFromLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// OrderID returns the identifier of the order being removed.
func (c RemoveOrderFromLoadCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RemoveOrderFromLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}
	c.loadID = loadID
	return nil
}

func (c *RemoveOrderFromLoadCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
