// Package kernel provides the shared value objects of the consolidation
// domain: identity (UUID), geographic coordinates (GeoPoint), and delivery
// time windows (TimeWindow).
//
// All kernel types follow the same conventions:
//   - Immutable value objects with private fields
//   - Construction only through validating constructor functions
//   - A Validate method that rejects zero values, backed by the constructor
//     guard pattern
//
// The kernel carries no business policy of its own; thresholds such as the
// minimum shared delivery window live in the domain services that use these
// types.
package kernel
