package commands

import (
	"context"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/load"
	"consolidation/internal/core/domain/services"
	"consolidation/internal/core/ports"
)

// ConsolidateOrdersCommandHandler orchestrates the consolidation of pending
// orders into loads: it fetches the geographic candidate batch, runs the
// grouping service, and persists every resulting load together with its
// member orders' status flips inside a single transaction.
//
// A failure while persisting any load rolls the whole batch back, so member
// orders are never left in a mixed pending/consolidated state; the call fails
// hard instead.
//
// Example:
//
//	handler := NewConsolidateOrdersCommandHandler(
//	    uowFactory, services.NewLoadBuilder(), services.DefaultConsolidationOptions())
//	loads, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("consolidation failed: %w", err)
//	}
//	fmt.Printf("%d loads formed", len(loads))
type ConsolidateOrdersCommandHandler struct {
	uowFactory UoWFactory
	grouper    services.Grouper
	defaults   services.ConsolidationOptions
}

// NewConsolidateOrdersCommandHandler creates a handler for order consolidation.
// The grouper decides the partitioning; defaults supply thresholds for calls
// without overrides.
func NewConsolidateOrdersCommandHandler(
	uowFactory UoWFactory,
	grouper services.Grouper,
	defaults services.ConsolidationOptions,
) ConsolidateOrdersCommandHandler {
	return ConsolidateOrdersCommandHandler{
		uowFactory: uowFactory,
		grouper:    grouper,
		defaults:   defaults,
	}
}

// Handle processes the consolidation command and returns the finalized loads
// in formation order. An area without pending orders yields an empty slice.
func (h ConsolidateOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd ConsolidateOrdersCommand,
) ([]*load.Load, error) {
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

	orderRepo := uow.OrderRepository()
	loadRepo := uow.LoadRepository()

	candidates, err := orderRepo.FindPendingInArea(ctx, cmd.Center(), opts.MaxDistanceKm)
	if err != nil {
		return nil, err
	}

	plans, err := h.grouper.BuildLoads(candidates, opts)
	if err != nil {
		return nil, err
	}

	loads := make([]*load.Load, 0, len(plans))
	for _, plan := range plans {
		l, err := h.finalizeLoad(ctx, plan, loadRepo, orderRepo)
		if err != nil {
			return nil, err
		}
		loads = append(loads, l)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return loads, nil
}

// finalizeLoad turns one plan into a persisted Consolidated load and flips
// every member order to Consolidated.
func (h ConsolidateOrdersCommandHandler) finalizeLoad(
	ctx context.Context,
	plan services.LoadPlan,
	loadRepo ports.LoadRepository,
	orderRepo ports.OrderRepository,
) (*load.Load, error) {
	l, err := load.NewLoad(kernel.NewUUID())
	if err != nil {
		return nil, err
	}

	for _, member := range plan.Orders {
		if err = l.AddOrder(member.ID(), member.TotalWeight(), member.TotalVolume()); err != nil {
			return nil, err
		}
	}

	if err = l.Consolidate(); err != nil {
		return nil, err
	}

	if err = loadRepo.Add(ctx, l); err != nil {
		return nil, err
	}

	for _, member := range plan.Orders {
		if err = member.Consolidate(); err != nil {
			return nil, err
		}
		if err = orderRepo.Update(ctx, member); err != nil {
			return nil, err
		}
	}

	return l, nil
}
