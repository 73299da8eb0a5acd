// Package load provides the Load aggregate: a vehicle-loadable group of
// orders bounded by weight and volume capacity.
//
// A Load is created empty by the load builder, populated order by order, and
// finalized with status Consolidated. Later it may gain or lose members
// through the mutation commands while its status stays untouched; dispatch
// state transitions belong to other services.
//
// The aggregate keeps the running weight/volume totals consistent with its
// membership; removal subtracts with a floor at zero so a load whose totals
// drifted in earlier inconsistent writes can still be repaired order by order.
package load
