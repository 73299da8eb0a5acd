package services

import (
	"errors"

	"consolidation/internal/core/domain/model/load"
	"consolidation/internal/core/domain/model/order"
)

var (
	// ErrLoadCapacityExceeded indicates that adding the candidate would push
	// the load past its weight or volume capacity.
	ErrLoadCapacityExceeded = errors.New("load capacity exceeded")

	// ErrTimeWindowIncompatible indicates that the candidate's delivery
	// window shares less than the required minimum with a member order.
	ErrTimeWindowIncompatible = errors.New("time window incompatible with load members")
)

// CheckAddOrderToLoad decides whether the candidate order may join an existing
// load. It returns nil when the addition is feasible, ErrLoadCapacityExceeded
// when the load's running totals plus the candidate's metrics would exceed
// the capacity thresholds, and ErrTimeWindowIncompatible when the candidate
// fails the minimum-shared-window check against the resolved member orders.
//
// Capacity is checked first, mirroring the builder's ordering; members is the
// load's membership resolved by the caller (one lookup per member).
func CheckAddOrderToLoad(
	l *load.Load,
	candidate *order.Order,
	members []*order.Order,
	opts ConsolidationOptions,
) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if err := candidate.Validate(); err != nil {
		return err
	}

	if l.TotalWeight()+candidate.TotalWeight() > opts.MaxWeightKg ||
		l.TotalVolume()+candidate.TotalVolume() > opts.MaxVolumeM3 {
		return ErrLoadCapacityExceeded
	}

	if !IsTimeWindowCompatible(members, candidate, opts.MaxTimeWindowOverlapMinutes) {
		return ErrTimeWindowIncompatible
	}

	return nil
}
