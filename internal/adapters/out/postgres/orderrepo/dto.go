// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Packages live in a child table and are loaded eagerly wherever the full
// aggregate is reconstructed.
type OrderDTO struct {
	ID                  uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Street              string      `gorm:"type:text"`
	Location            LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	TimeWindowStart     *time.Time
	TimeWindowEnd       *time.Time
	SpecialInstructions string       `gorm:"type:text"`
	Status              int          `gorm:"index"`
	Packages            []PackageDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO represents the embedded delivery destination within the order table.
type LocationDTO struct {
	Latitude  float64 `gorm:"type:double precision"`
	Longitude float64 `gorm:"type:double precision"`
}

// PackageDTO represents one parcel row belonging to an order.
type PackageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Description string    `gorm:"type:text"`
	WeightKg    float64
	LengthCm    float64
	WidthCm     float64
	HeightCm    float64
	Fragile     bool
}

// TableName specifies the database table name for package entities.
func (PackageDTO) TableName() string {
	return "packages"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var windowStart, windowEnd *time.Time
	if window := aggregate.TimeWindow(); window != nil {
		start, end := window.Start(), window.End()
		windowStart, windowEnd = &start, &end
	}

	packages := aggregate.Packages()
	packageDTOs := make([]PackageDTO, 0, len(packages))
	for _, pkg := range packages {
		packageDTOs = append(packageDTOs, PackageDTO{
			ID:          pkg.ID().Bytes(),
			OrderID:     aggregate.ID().Bytes(),
			Description: pkg.Description(),
			WeightKg:    pkg.WeightKg(),
			LengthCm:    pkg.LengthCm(),
			WidthCm:     pkg.WidthCm(),
			HeightCm:    pkg.HeightCm(),
			Fragile:     pkg.IsFragile(),
		})
	}

	return OrderDTO{
		ID:     aggregate.ID().Bytes(),
		Street: aggregate.Street(),
		Location: LocationDTO{
			Latitude:  aggregate.Location().Latitude(),
			Longitude: aggregate.Location().Longitude(),
		},
		TimeWindowStart:     windowStart,
		TimeWindowEnd:       windowEnd,
		SpecialInstructions: aggregate.SpecialInstructions(),
		Status:              int(aggregate.Status()),
		Packages:            packageDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including packages and the optional
// time window using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	packages := make([]order.Package, 0, len(dto.Packages))
	for _, pkgDTO := range dto.Packages {
		pkgID, pkgErr := kernel.UUIDFromBytes(pkgDTO.ID[:])
		if pkgErr != nil {
			return nil, pkgErr
		}

		pkg, pkgErr := order.NewPackage(
			pkgID,
			pkgDTO.Description,
			pkgDTO.WeightKg,
			pkgDTO.LengthCm,
			pkgDTO.WidthCm,
			pkgDTO.HeightCm,
			pkgDTO.Fragile,
		)
		if pkgErr != nil {
			return nil, pkgErr
		}
		packages = append(packages, pkg)
	}

	var timeWindow *kernel.TimeWindow
	if dto.TimeWindowStart != nil && dto.TimeWindowEnd != nil {
		window, windowErr := kernel.RestoreTimeWindow(*dto.TimeWindowStart, *dto.TimeWindowEnd)
		if windowErr != nil {
			return nil, windowErr
		}
		timeWindow = &window
	}

	return order.RestoreOrder(
		id,
		dto.Street,
		location,
		packages,
		timeWindow,
		dto.SpecialInstructions,
		order.Status(dto.Status),
	)
}
