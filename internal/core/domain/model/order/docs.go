// Package order provides the Order aggregate of the consolidation domain:
// a customer delivery request with its packages, optional delivery time
// window, optional special instructions, and lifecycle status.
//
// The package includes:
//   - Order: the aggregate root, constructed via NewOrder or RestoreOrder
//   - Package: an immutable parcel value object with weight and dimensions
//   - Status: the order lifecycle state machine
//   - TotalWeight / TotalVolume: pure metric functions over package lists
//
// The consolidation core owns only the Pending <-> Consolidated transitions
// (Consolidate and Release); the remaining lifecycle states belong to the
// dispatch and routing services and are represented here so any persisted
// order can be rehydrated.
package order
