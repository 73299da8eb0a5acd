package queries

import (
	"context"
	"errors"

	"consolidation/internal/core/domain/model/order"
	"consolidation/internal/core/domain/services"
	"consolidation/internal/core/ports"
	"consolidation/internal/pkg/errs"
)

// DetectLoadConflictsQueryHandler inspects a load's member orders for
// scheduling and handling concerns. The report is advisory: an unknown load
// reports no conflicts, and member orders that cannot be resolved are left
// out of the analysis instead of failing the whole inspection.
type DetectLoadConflictsQueryHandler struct {
	loadRepository  ports.LoadRepository
	orderRepository ports.OrderRepository
	detector        services.ConflictDetector
	defaults        services.ConsolidationOptions
}

// NewDetectLoadConflictsQueryHandler creates a handler for conflict inspection queries.
func NewDetectLoadConflictsQueryHandler(
	loadRepository ports.LoadRepository,
	orderRepository ports.OrderRepository,
	detector services.ConflictDetector,
	defaults services.ConsolidationOptions,
) DetectLoadConflictsQueryHandler {
	return DetectLoadConflictsQueryHandler{
		loadRepository:  loadRepository,
		orderRepository: orderRepository,
		detector:        detector,
		defaults:        defaults,
	}
}

// Handle inspects the load and returns the conflict descriptions.
func (h DetectLoadConflictsQueryHandler) Handle(
	ctx context.Context,
	query DetectLoadConflictsQuery,
) (DetectLoadConflictsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return DetectLoadConflictsQueryResponse{}, err
	}

	opts := h.defaults.Merge(query.Overrides())
	if err := opts.Validate(); err != nil {
		return DetectLoadConflictsQueryResponse{}, err
	}

	l, err := h.loadRepository.Get(ctx, query.LoadID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return DetectLoadConflictsQueryResponse{Conflicts: []string{}}, nil
	}
	if err != nil {
		return DetectLoadConflictsQueryResponse{}, err
	}

	members := make([]*order.Order, 0, l.OrderCount())
	for _, id := range l.OrderIDs() {
		member, memberErr := h.orderRepository.Get(ctx, id)
		if memberErr != nil {
			continue
		}
		members = append(members, member)
	}

	conflicts := h.detector.DetectConflicts(members, opts.MaxTimeWindowOverlapMinutes)

	return DetectLoadConflictsQueryResponse{Conflicts: conflicts}, nil
}
