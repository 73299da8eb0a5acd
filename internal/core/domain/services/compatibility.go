package services

import (
	"consolidation/internal/core/domain/model/order"
)

// IsTimeWindowCompatible reports whether the candidate order may share a load
// with the given existing members under the required minimum shared delivery
// window.
//
// Policy:
//   - A candidate without a time window is compatible with anything; the
//     absence of a constraint never blocks grouping.
//   - Members without a time window do not constrain the candidate.
//   - For every windowed member, the overlap with the candidate's window must
//     be at least minOverlapMinutes. The comparison is strict: an overlap
//     smaller than the threshold is incompatible, so a large threshold
//     effectively demands near-identical delivery windows while 0 accepts any
//     non-negative overlap.
func IsTimeWindowCompatible(existing []*order.Order, candidate *order.Order, minOverlapMinutes float64) bool {
	candidateWindow := candidate.TimeWindow()
	if candidateWindow == nil {
		return true
	}

	for _, member := range existing {
		memberWindow := member.TimeWindow()
		if memberWindow == nil {
			continue
		}

		if memberWindow.OverlapMinutes(*candidateWindow) < minOverlapMinutes {
			return false
		}
	}

	return true
}
