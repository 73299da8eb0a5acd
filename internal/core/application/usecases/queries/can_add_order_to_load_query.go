package queries

import (
	"errors"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/services"
	"consolidation/internal/pkg/guard"
)

var (
	ErrCanAddOrderToLoadQueryIsNotConstructed = errors.New(
		"CanAddOrderToLoadQuery must be created via NewCanAddOrderToLoadQuery constructor",
	)
)

// CanAddOrderToLoadQuery asks whether an order could join a load without
// breaking capacity or time-window constraints. It is a pure feasibility
// check and never mutates the load or the order.
//
// Example:
//
//	query, err := NewCanAddOrderToLoadQuery(loadID, orderID, services.OptionOverrides{})
//	if err != nil {
//	    return err
//	}
//
//	resp, err := handler.Handle(ctx, query)
//	if err == nil && resp.CanAdd {
//	    // safe to issue the add command
//	}
type CanAddOrderToLoadQuery struct { //nolint:recvcheck //using for validation
	loadID    kernel.UUID
	orderID   kernel.UUID
	overrides services.OptionOverrides

	guard guard.ConstructorGuard
}

// NewCanAddOrderToLoadQuery creates a feasibility query for the given load
// and order. Both identifiers must be valid.
func NewCanAddOrderToLoadQuery(
	loadID kernel.UUID,
	orderID kernel.UUID,
	overrides services.OptionOverrides,
) (CanAddOrderToLoadQuery, error) {
	query := CanAddOrderToLoadQuery{
		overrides: overrides,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(query.setLoadID(loadID), query.setOrderID(orderID)); err != nil {
		return CanAddOrderToLoadQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrCanAddOrderToLoadQueryIsNotConstructed if validation fails.
func (q CanAddOrderToLoadQuery) Validate() error {
	return q.guard.Validate(ErrCanAddOrderToLoadQueryIsNotConstructed)
}

// LoadID returns the identifier of the load under consideration.
func (q CanAddOrderToLoadQuery) LoadID() kernel.UUID {
	return q.loadID
}

// OrderID returns the identifier of the candidate order.
func (q CanAddOrderToLoadQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Overrides returns the per-call threshold overrides.
func (q CanAddOrderToLoadQuery) Overrides() services.OptionOverrides {
	return q.overrides
}

func (q *CanAddOrderToLoadQuery) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}
	q.loadID = loadID
	return nil
}

func (q *CanAddOrderToLoadQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}

// CanAddOrderToLoadQueryResponse carries the feasibility verdict.
type CanAddOrderToLoadQueryResponse struct {
	CanAdd bool
}
