package ports

import (
	"context"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates as
// seen by the consolidation core: reading candidates and persisting the
// pending/consolidated status flips.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindPendingInArea retrieves all orders in Pending status whose delivery
	// location lies within radiusKm of center. Used by the load builder to
	// collect consolidation candidates.
	FindPendingInArea(ctx context.Context, center kernel.GeoPoint, radiusKm float64) ([]*order.Order, error)
}
