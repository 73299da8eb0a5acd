package services

import (
	"fmt"

	"consolidation/internal/core/domain/model/order"
)

// ConflictDetector inspects a finalized load's member orders and surfaces
// human-readable delivery conflicts. Three independent, cumulative categories
// are reported:
//
//   - insufficient pairwise time-window overlap between windowed members
//   - presence of special delivery instructions (one summary line)
//   - presence of fragile packages (one summary line)
//
// The detector is a pure function of the resolved members; resolving them
// from storage is the caller's job.
type ConflictDetector struct{}

// NewConflictDetector creates a new ConflictDetector instance.
func NewConflictDetector() ConflictDetector {
	return ConflictDetector{}
}

// DetectConflicts scans the members pairwise in their load insertion order and
// returns zero or more conflict descriptions. minOverlapMinutes is the same
// required-minimum threshold used during grouping; pairs of windowed orders
// whose overlap falls below it are reported with the actual overlap value.
func (d ConflictDetector) DetectConflicts(members []*order.Order, minOverlapMinutes float64) []string {
	conflicts := make([]string, 0)

	for i := 0; i < len(members); i++ {
		windowA := members[i].TimeWindow()
		if windowA == nil {
			continue
		}

		for j := i + 1; j < len(members); j++ {
			windowB := members[j].TimeWindow()
			if windowB == nil {
				continue
			}

			overlap := windowA.OverlapMinutes(*windowB)
			if overlap < minOverlapMinutes {
				conflicts = append(conflicts, fmt.Sprintf(
					"orders %s and %s share only %g minutes of delivery window (minimum %g required)",
					members[i].ID(), members[j].ID(), overlap, minOverlapMinutes))
			}
		}
	}

	instructionCount := 0
	fragileCount := 0
	for _, member := range members {
		if member.HasSpecialInstructions() {
			instructionCount++
		}
		for _, pkg := range member.Packages() {
			if pkg.IsFragile() {
				fragileCount++
			}
		}
	}

	if instructionCount > 0 {
		conflicts = append(conflicts, fmt.Sprintf(
			"%d order(s) carry special delivery instructions", instructionCount))
	}

	if fragileCount > 0 {
		conflicts = append(conflicts, fmt.Sprintf(
			"load contains %d fragile package(s)", fragileCount))
	}

	return conflicts
}
