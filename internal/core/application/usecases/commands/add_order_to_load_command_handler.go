package commands

import (
	"context"

	"consolidation/internal/core/domain/model/load"
	"consolidation/internal/core/domain/model/order"
	"consolidation/internal/core/domain/services"
	"consolidation/internal/core/ports"
)

// AddOrderToLoadCommandHandler adds an order to an existing load.
//
// Error channel: missing load or order surfaces as errs.ErrObjectNotFound
// (via errors.Is); an infeasible addition surfaces as
// services.ErrLoadCapacityExceeded or services.ErrTimeWindowIncompatible.
// Callers that only care about the legacy success/failure contract can treat
// any error as "could not add".
//
// Example:
//
//	l, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // load or order missing
//	case errors.Is(err, services.ErrLoadCapacityExceeded),
//	    errors.Is(err, services.ErrTimeWindowIncompatible):
//	    // constraint violated
//	case err != nil:
//	    // infrastructure failure
//	}
type AddOrderToLoadCommandHandler struct {
	uowFactory UoWFactory
	defaults   services.ConsolidationOptions
}

// NewAddOrderToLoadCommandHandler creates a handler for load membership additions.
func NewAddOrderToLoadCommandHandler(
	uowFactory UoWFactory,
	defaults services.ConsolidationOptions,
) AddOrderToLoadCommandHandler {
	return AddOrderToLoadCommandHandler{
		uowFactory: uowFactory,
		defaults:   defaults,
	}
}

// Handle processes the addition. On success the load is persisted with the
// order id appended and its totals increased by the order's metrics, and the
// order transitions to Consolidated; both writes share one transaction.
func (h AddOrderToLoadCommandHandler) Handle(
	ctx context.Context,
	cmd AddOrderToLoadCommand,
) (*load.Load, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	opts := h.defaults.Merge(cmd.Overrides())
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loadRepo := uow.LoadRepository()
	orderRepo := uow.OrderRepository()

	l, err := loadRepo.Get(ctx, cmd.LoadID())
	if err != nil {
		return nil, err
	}

	candidate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	members, err := resolveMembers(ctx, l, orderRepo)
	if err != nil {
		return nil, err
	}

	if err = services.CheckAddOrderToLoad(l, candidate, members, opts); err != nil {
		return nil, err
	}

	if err = l.AddOrder(candidate.ID(), candidate.TotalWeight(), candidate.TotalVolume()); err != nil {
		return nil, err
	}

	if err = candidate.Consolidate(); err != nil {
		return nil, err
	}

	if err = loadRepo.Update(ctx, l); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, candidate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return l, nil
}

// resolveMembers fetches every member order of the load, one lookup per id.
func resolveMembers(ctx context.Context, l *load.Load, orderRepo ports.OrderRepository) ([]*order.Order, error) {
	memberIDs := l.OrderIDs()
	members := make([]*order.Order, 0, len(memberIDs))

	for _, id := range memberIDs {
		member, err := orderRepo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, nil
}
