package queries

import (
	"context"
	"errors"

	"consolidation/internal/core/domain/model/load"
	"consolidation/internal/core/domain/model/order"
	"consolidation/internal/core/domain/services"
	"consolidation/internal/core/ports"
)

// CanAddOrderToLoadQueryHandler evaluates whether an order fits a load under
// the configured capacity and time-window thresholds. Constraint violations
// are part of the answer, not errors: they yield CanAdd=false with a nil
// error. Only missing aggregates and infrastructure failures surface as
// errors.
type CanAddOrderToLoadQueryHandler struct {
	loadRepository  ports.LoadRepository
	orderRepository ports.OrderRepository
	defaults        services.ConsolidationOptions
}

// NewCanAddOrderToLoadQueryHandler creates a handler for feasibility queries.
func NewCanAddOrderToLoadQueryHandler(
	loadRepository ports.LoadRepository,
	orderRepository ports.OrderRepository,
	defaults services.ConsolidationOptions,
) CanAddOrderToLoadQueryHandler {
	return CanAddOrderToLoadQueryHandler{
		loadRepository:  loadRepository,
		orderRepository: orderRepository,
		defaults:        defaults,
	}
}

// Handle answers the feasibility question for the given load and order.
func (h CanAddOrderToLoadQueryHandler) Handle(
	ctx context.Context,
	query CanAddOrderToLoadQuery,
) (CanAddOrderToLoadQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CanAddOrderToLoadQueryResponse{}, err
	}

	opts := h.defaults.Merge(query.Overrides())
	if err := opts.Validate(); err != nil {
		return CanAddOrderToLoadQueryResponse{}, err
	}

	l, err := h.loadRepository.Get(ctx, query.LoadID())
	if err != nil {
		return CanAddOrderToLoadQueryResponse{}, err
	}

	candidate, err := h.orderRepository.Get(ctx, query.OrderID())
	if err != nil {
		return CanAddOrderToLoadQueryResponse{}, err
	}

	members, err := h.resolveMembers(ctx, l)
	if err != nil {
		return CanAddOrderToLoadQueryResponse{}, err
	}

	err = services.CheckAddOrderToLoad(l, candidate, members, opts)
	switch {
	case err == nil:
		return CanAddOrderToLoadQueryResponse{CanAdd: true}, nil
	case errors.Is(err, services.ErrLoadCapacityExceeded),
		errors.Is(err, services.ErrTimeWindowIncompatible):
		return CanAddOrderToLoadQueryResponse{CanAdd: false}, nil
	default:
		return CanAddOrderToLoadQueryResponse{}, err
	}
}

func (h CanAddOrderToLoadQueryHandler) resolveMembers(
	ctx context.Context,
	l *load.Load,
) ([]*order.Order, error) {
	memberIDs := l.OrderIDs()
	members := make([]*order.Order, 0, len(memberIDs))

	for _, id := range memberIDs {
		member, err := h.orderRepository.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, nil
}
