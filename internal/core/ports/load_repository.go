package ports

import (
	"context"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/load"
)

// LoadRepository defines the persistence contract for load aggregates.
type LoadRepository interface {
	// Add persists a new load aggregate to storage.
	// The load must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *load.Load) error

	// Update persists changes to an existing load aggregate.
	// The load must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *load.Load) error

	// Get retrieves a load aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*load.Load, error)
}
