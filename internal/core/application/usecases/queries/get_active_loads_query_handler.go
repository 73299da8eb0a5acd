package queries

import (
	"context"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/load"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetActiveLoadsQueryHandler retrieves active load information from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
//
// Example:
//
//	handler := NewGetActiveLoadsQueryHandler(db)
//	query := NewGetActiveLoadsQuery()
//
//	loads, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get active loads: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d active loads\n", len(loads))
type GetActiveLoadsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveLoadsQueryHandler creates a handler for active load queries.
// Requires a GORM database connection for query execution.
func NewGetActiveLoadsQueryHandler(db *gorm.DB) GetActiveLoadsQueryHandler {
	return GetActiveLoadsQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-completed loads.
// Results are sorted by load ID for consistent output.
func (h GetActiveLoadsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveLoadsQuery,
) ([]GetActiveLoadsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	loads := make([]GetActiveLoadsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			total_weight,
			total_volume,
			order_ids
		FROM loads
		WHERE status != ?
		ORDER BY id
	`, load.Completed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var loadResp GetActiveLoadsQueryResponse
		var id uuid.UUID
		var status int
		var orderIDs pq.StringArray

		err = rows.Scan(
			&id,
			&status,
			&loadResp.TotalWeight,
			&loadResp.TotalVolume,
			&orderIDs,
		)
		if err != nil {
			return nil, err
		}

		loadID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		loadResp.ID = loadID

		loadStatus := load.Status(status)
		if statusErr := loadStatus.Validate(); statusErr != nil {
			return nil, statusErr
		}
		loadResp.Status = loadStatus
		loadResp.OrderCount = len(orderIDs)

		loads = append(loads, loadResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return loads, nil
}
