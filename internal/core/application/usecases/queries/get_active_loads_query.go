package queries

import (
	"errors"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/load"
	"consolidation/internal/pkg/guard"
)

var (
	ErrGetActiveLoadsQueryIsNotConstructed = errors.New(
		"GetActiveLoadsQuery must be created via NewGetActiveLoadsQuery constructor",
	)
)

// GetActiveLoadsQuery retrieves all loads that have not yet completed their
// delivery run. Returns loads in pending, consolidated, assigned or
// dispatched status for monitoring and dispatch planning.
//
// Example:
//
//	query := NewGetActiveLoadsQuery()
//	handler := NewGetActiveLoadsQueryHandler(db)
//
//	loads, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active loads: %w", err)
//	}
//
//	for _, l := range loads {
//	    fmt.Printf("Load %s: %d orders, %.1f kg\n", l.ID, l.OrderCount, l.TotalWeight)
//	}
type GetActiveLoadsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveLoadsQuery creates a query to retrieve active loads.
// This is a parameterless query that fetches all non-completed loads.
func NewGetActiveLoadsQuery() GetActiveLoadsQuery {
	return GetActiveLoadsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveLoadsQueryIsNotConstructed if validation fails.
func (q GetActiveLoadsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveLoadsQueryIsNotConstructed)
}

// GetActiveLoadsQueryResponse represents one active load read model.
// Totals are the running aggregates maintained by the load itself.
type GetActiveLoadsQueryResponse struct {
	ID          kernel.UUID
	Status      load.Status
	TotalWeight float64
	TotalVolume float64
	OrderCount  int
}
