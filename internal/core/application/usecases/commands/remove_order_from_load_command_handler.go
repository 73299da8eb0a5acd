package commands

import (
	"context"

	"consolidation/internal/core/domain/model/load"
)

// RemoveOrderFromLoadCommandHandler removes an order from an existing load
// and releases the order back to the pending pool.
//
// Error channel: a missing load or order surfaces as errs.ErrObjectNotFound
// (via errors.Is); removing an order the load does not contain surfaces as
// load.ErrOrderNotInLoad.
type RemoveOrderFromLoadCommandHandler struct {
	uowFactory UoWFactory
}

// NewRemoveOrderFromLoadCommandHandler creates a handler for load membership removals.
func NewRemoveOrderFromLoadCommandHandler(uowFactory UoWFactory) RemoveOrderFromLoadCommandHandler {
	return RemoveOrderFromLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal. On success the load is persisted with the
// order id gone and its totals reduced by the order's metrics (floored at
// zero), and the order transitions back to Pending; both writes share one
// transaction.
func (h RemoveOrderFromLoadCommandHandler) Handle(
	ctx context.Context,
	cmd RemoveOrderFromLoadCommand,
) (*load.Load, error) {
	if err := cmd.Validate(); err != nil {
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

	member, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = l.RemoveOrder(member.ID(), member.TotalWeight(), member.TotalVolume()); err != nil {
		return nil, err
	}

	if err = member.Release(); err != nil {
		return nil, err
	}

	if err = loadRepo.Update(ctx, l); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, member); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return l, nil
}
