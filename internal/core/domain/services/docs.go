// Package services provides the domain services of the consolidation core:
// business logic that spans the Order and Load aggregates without belonging
// to either.
//
// The package includes:
//   - LoadBuilder: greedy single-pass grouping of pending orders into load
//     plans under capacity and time-window constraints
//   - CheckAddOrderToLoad: admission check for adding an order to an existing
//     load
//   - IsTimeWindowCompatible: the required-minimum shared delivery window
//     predicate used by both
//   - ConflictDetector: pairwise and aggregate inspection of a load's members
//   - ConsolidationOptions: default thresholds with pure per-call merging
//
// All services are pure with respect to storage; repositories are consulted
// by the application layer, which hands resolved aggregates in.
package services
