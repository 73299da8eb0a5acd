package commands

import (
	"errors"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/services"
	"consolidation/internal/pkg/guard"
)

var ErrConsolidateOrdersCommandIsNotConstructed = errors.New(
	"ConsolidateOrdersCommand must be created via NewConsolidateOrdersCommand constructor",
)

// ConsolidateOrdersCommand requests the grouping of pending orders around a
// geographic center into vehicle-loadable loads. Per-call threshold overrides
// are merged over the handler's defaults; nil override fields leave the
// defaults untouched.
//
// Example:
//
//	center, _ := kernel.NewGeoPoint(52.52, 13.405)
//	cmd, err := NewConsolidateOrdersCommand(center, services.OptionOverrides{})
//	if err != nil {
//	    return err
//	}
//
//	loads, err := handler.Handle(ctx, cmd)
type ConsolidateOrdersCommand struct { //nolint:recvcheck //using for validation
	center    kernel.GeoPoint
	overrides services.OptionOverrides

	guard guard.ConstructorGuard
}

// NewConsolidateOrdersCommand creates a command to consolidate pending orders
// around center. The center must be a properly constructed geo point.
func NewConsolidateOrdersCommand(
	center kernel.GeoPoint,
	overrides services.OptionOverrides,
) (ConsolidateOrdersCommand, error) {
	cmd := ConsolidateOrdersCommand{
		overrides: overrides,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setCenter(center); err != nil {
		return ConsolidateOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConsolidateOrdersCommandIsNotConstructed if validation fails.
func (c ConsolidateOrdersCommand) Validate() error {
	return c.guard.Validate(ErrConsolidateOrdersCommandIsNotConstructed)
}

// Center returns the geographic center of the consolidation area.
func (c ConsolidateOrdersCommand) Center() kernel.GeoPoint {
	return c.center
}

// Overrides returns the per-call threshold overrides.
func (c ConsolidateOrdersCommand) Overrides() services.OptionOverrides {
	return c.overrides
}

func (c *ConsolidateOrdersCommand) setCenter(center kernel.GeoPoint) error {
	if err := center.Validate(); err != nil {
		return err
	}

	c.center = center
	return nil
}
