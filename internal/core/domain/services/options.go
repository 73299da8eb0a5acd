package services

import (
	"errors"

	"consolidation/internal/pkg/errs"
)

// Default consolidation thresholds, applied when a caller supplies no override.
const (
	DefaultMaxDistanceKm               = 10.0
	DefaultMaxWeightKg                 = 1000.0
	DefaultMaxVolumeM3                 = 10.0
	DefaultMaxTimeWindowOverlapMinutes = 120.0
)

// ConsolidationOptions carries the thresholds that bound load formation:
// the geographic search radius, the per-load capacity limits, and the minimum
// shared delivery window required between grouped orders.
//
// MaxTimeWindowOverlapMinutes is a required-minimum, not a conflict-avoidance
// threshold: two windowed orders may share a load only when every pairwise
// overlap is at least this many minutes. Zero means any positive overlap (or
// a missing window) is acceptable; larger values demand closer alignment.
type ConsolidationOptions struct {
	MaxDistanceKm               float64
	MaxWeightKg                 float64
	MaxVolumeM3                 float64
	MaxTimeWindowOverlapMinutes float64
}

// OptionOverrides carries optional per-call replacements for individual
// thresholds. A nil field leaves the corresponding default untouched.
type OptionOverrides struct {
	MaxDistanceKm               *float64
	MaxWeightKg                 *float64
	MaxVolumeM3                 *float64
	MaxTimeWindowOverlapMinutes *float64
}

// DefaultConsolidationOptions returns the documented default thresholds.
func DefaultConsolidationOptions() ConsolidationOptions {
	return ConsolidationOptions{
		MaxDistanceKm:               DefaultMaxDistanceKm,
		MaxWeightKg:                 DefaultMaxWeightKg,
		MaxVolumeM3:                 DefaultMaxVolumeM3,
		MaxTimeWindowOverlapMinutes: DefaultMaxTimeWindowOverlapMinutes,
	}
}

// Merge returns a copy of o with every non-nil override applied. The receiver
// is not modified; merging is a pure function of its inputs.
func (o ConsolidationOptions) Merge(overrides OptionOverrides) ConsolidationOptions {
	merged := o

	if overrides.MaxDistanceKm != nil {
		merged.MaxDistanceKm = *overrides.MaxDistanceKm
	}
	if overrides.MaxWeightKg != nil {
		merged.MaxWeightKg = *overrides.MaxWeightKg
	}
	if overrides.MaxVolumeM3 != nil {
		merged.MaxVolumeM3 = *overrides.MaxVolumeM3
	}
	if overrides.MaxTimeWindowOverlapMinutes != nil {
		merged.MaxTimeWindowOverlapMinutes = *overrides.MaxTimeWindowOverlapMinutes
	}

	return merged
}

// Validate checks that the thresholds are usable: radius and capacities must
// be positive, the minimum shared window must not be negative.
func (o ConsolidationOptions) Validate() error {
	return errors.Join(
		requirePositive("max distance km", o.MaxDistanceKm),
		requirePositive("max weight kg", o.MaxWeightKg),
		requirePositive("max volume m3", o.MaxVolumeM3),
		requireNonNegative("max time window overlap minutes", o.MaxTimeWindowOverlapMinutes),
	)
}

func requirePositive(name string, value float64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name,
			errors.New("value must be greater than 0"))
	}
	return nil
}

func requireNonNegative(name string, value float64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name,
			errors.New("value must not be negative"))
	}
	return nil
}
