// Package loadrepo provides data transfer objects and mapping functions for load persistence.
// This package implements the repository pattern for the load domain aggregate, handling
// the conversion between domain entities and database representations.
package loadrepo

import (
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/load"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// LoadDTO represents the database structure for persisting load aggregates.
// Member order ids are stored as a text array to preserve insertion order
// without a join table.
type LoadDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrderIDs    pq.StringArray `gorm:"type:text[]"`
	TotalWeight float64
	TotalVolume float64
	Status      int `gorm:"index"`
}

// TableName specifies the database table name for load entities.
// Overrides GORM's default naming convention to use "loads".
func (LoadDTO) TableName() string {
	return "loads"
}

// fromDomain converts a load domain aggregate to its database representation.
func fromDomain(aggregate *load.Load) LoadDTO {
	orderIDs := aggregate.OrderIDs()
	rawIDs := make(pq.StringArray, 0, len(orderIDs))
	for _, id := range orderIDs {
		rawIDs = append(rawIDs, id.String())
	}

	return LoadDTO{
		ID:          aggregate.ID().Bytes(),
		OrderIDs:    rawIDs,
		TotalWeight: aggregate.TotalWeight(),
		TotalVolume: aggregate.TotalVolume(),
		Status:      int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a load domain aggregate.
// Reconstructs the complete aggregate including member order ids and running
// totals using RestoreLoad.
func toDomain(dto LoadDTO) (*load.Load, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(dto.OrderIDs))
	for _, raw := range dto.OrderIDs {
		orderID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return nil, idErr
		}
		orderIDs = append(orderIDs, orderID)
	}

	return load.RestoreLoad(id, orderIDs, dto.TotalWeight, dto.TotalVolume, load.Status(dto.Status))
}
