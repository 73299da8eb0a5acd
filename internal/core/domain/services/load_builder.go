package services

import (
	"sort"

	"consolidation/internal/core/domain/model/order"
)

// LoadPlan is one group of orders produced by a Grouper, together with the
// summed package metrics of its members. Plans are pure domain output; turning
// them into persisted Load aggregates is the application layer's job.
type LoadPlan struct {
	Orders      []*order.Order
	TotalWeight float64
	TotalVolume float64
}

// Grouper partitions a batch of candidate orders into vehicle-loadable groups.
// It exists so the greedy builder can later be swapped for a packer with
// stronger optimality guarantees without touching the command handlers.
type Grouper interface {
	BuildLoads(candidates []*order.Order, opts ConsolidationOptions) ([]LoadPlan, error)
}

// LoadBuilder is the domain service implementing the greedy single-pass
// grouping of pending orders into loads.
//
// The algorithm is deterministic and makes no optimality claim: it produces
// *a* valid grouping quickly, not an optimal bin packing.
//
//  1. Candidates are stably sorted by time-window start; orders without a
//     window sort after all windowed orders with their original relative
//     order preserved. The ordering is a heuristic to cluster temporally
//     near orders together.
//  2. Orders are scanned once into an accumulator. When adding an order
//     would exceed the weight or volume capacity, the non-empty accumulator
//     is finalized first and the same order retried against a fresh one.
//  3. When the order's time window is incompatible with the accumulated
//     members, the accumulator is likewise finalized and the order starts a
//     fresh one.
//  4. A single order exceeding capacity on its own is still admitted to an
//     empty accumulator; splitting individual orders is out of scope.
//
// Example:
//
//	builder := services.NewLoadBuilder()
//	plans, err := builder.BuildLoads(pendingOrders, services.DefaultConsolidationOptions())
//	if err != nil {
//	    return err
//	}
//	for _, plan := range plans {
//	    // persist plan as a Load
//	}
type LoadBuilder struct{}

// NewLoadBuilder creates a new LoadBuilder instance.
func NewLoadBuilder() LoadBuilder {
	return LoadBuilder{}
}

var _ Grouper = LoadBuilder{}

// BuildLoads partitions the candidates into load plans honoring the capacity
// and time-window thresholds in opts. Candidates are expected to be pending
// orders already filtered to the geographic area; every candidate ends up in
// exactly one plan, in scan order.
func (b LoadBuilder) BuildLoads(candidates []*order.Order, opts ConsolidationOptions) ([]LoadPlan, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}
	}

	sorted := sortByTimeWindowStart(candidates)

	plans := make([]LoadPlan, 0)
	var current LoadPlan

	for _, candidate := range sorted {
		weight := candidate.TotalWeight()
		volume := candidate.TotalVolume()

		// Capacity first: finalize and retry the same order against a fresh
		// accumulator. An oversized order meeting an empty accumulator is
		// admitted as-is.
		if len(current.Orders) > 0 &&
			(current.TotalWeight+weight > opts.MaxWeightKg || current.TotalVolume+volume > opts.MaxVolumeM3) {
			plans = append(plans, current)
			current = LoadPlan{}
		}

		// Time window second, only against a non-empty accumulator.
		if len(current.Orders) > 0 &&
			!IsTimeWindowCompatible(current.Orders, candidate, opts.MaxTimeWindowOverlapMinutes) {
			plans = append(plans, current)
			current = LoadPlan{}
		}

		current.Orders = append(current.Orders, candidate)
		current.TotalWeight += weight
		current.TotalVolume += volume
	}

	if len(current.Orders) > 0 {
		plans = append(plans, current)
	}

	return plans, nil
}

// sortByTimeWindowStart returns a stably sorted copy of the candidates:
// windowed orders ascending by window start, windowless orders after them,
// original relative order preserved within ties.
func sortByTimeWindowStart(candidates []*order.Order) []*order.Order {
	sorted := make([]*order.Order, len(candidates))
	copy(sorted, candidates)

	sort.SliceStable(sorted, func(i, j int) bool {
		wi := sorted[i].TimeWindow()
		wj := sorted[j].TimeWindow()

		switch {
		case wi == nil && wj == nil:
			return false
		case wi == nil:
			return false
		case wj == nil:
			return true
		default:
			return wi.Start().Before(wj.Start())
		}
	})

	return sorted
}
