package order

import (
	"errors"

	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/pkg/errs"
	"consolidation/internal/pkg/guard"
)

// cubicCentimetersPerCubicMeter converts package dimensions (cm) to volume (m³).
const cubicCentimetersPerCubicMeter = 1_000_000

// ErrPackageIsNotConstructed is returned when a Package was not created via
// the NewPackage constructor.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

// Package is a single parcel belonging to an order. It is an immutable value
// object: identity, description, weight in kilograms, dimensions in
// centimeters, and a fragile flag.
//
// Example:
//
//	pkg, err := order.NewPackage(kernel.NewUUID(), "glassware", 4.5, 40, 30, 30, true)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("volume: %.3f m³", pkg.Volume())
type Package struct { //nolint:recvcheck //using for validation
	id          kernel.UUID
	description string
	weightKg    float64
	lengthCm    float64
	widthCm     float64
	heightCm    float64
	fragile     bool

	guard guard.ConstructorGuard
}

// NewPackage creates a Package after validating that weight and all three
// dimensions are positive. Violations are aggregated via errors.Join.
func NewPackage(
	id kernel.UUID,
	description string,
	weightKg float64,
	lengthCm float64,
	widthCm float64,
	heightCm float64,
	fragile bool,
) (Package, error) {
	pkg := Package{
		description: description,
		fragile:     fragile,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pkg.setID(id),
		pkg.setWeightKg(weightKg),
		pkg.setDimensionsCm(lengthCm, widthCm, heightCm),
	); err != nil {
		return Package{}, err
	}

	return pkg, nil
}

// Validate ensures the Package was created through NewPackage.
func (p Package) Validate() error {
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

// ID returns the package identity.
func (p Package) ID() kernel.UUID {
	return p.id
}

// Description returns the free-text description of the package contents.
func (p Package) Description() string {
	return p.description
}

// WeightKg returns the package weight in kilograms.
func (p Package) WeightKg() float64 {
	return p.weightKg
}

// LengthCm returns the package length in centimeters.
func (p Package) LengthCm() float64 {
	return p.lengthCm
}

// WidthCm returns the package width in centimeters.
func (p Package) WidthCm() float64 {
	return p.widthCm
}

// HeightCm returns the package height in centimeters.
func (p Package) HeightCm() float64 {
	return p.heightCm
}

// IsFragile reports whether the package requires fragile handling.
func (p Package) IsFragile() bool {
	return p.fragile
}

// Volume returns the package volume in cubic meters, computed from the
// centimeter dimensions. Precision follows native floating point; no rounding
// is applied.
func (p Package) Volume() float64 {
	return p.lengthCm * p.widthCm * p.heightCm / cubicCentimetersPerCubicMeter
}

// TotalWeight sums the weight of the given packages in kilograms.
// An empty list yields 0.
func TotalWeight(packages []Package) float64 {
	var total float64
	for _, pkg := range packages {
		total += pkg.WeightKg()
	}
	return total
}

// TotalVolume sums the volume of the given packages in cubic meters.
// An empty list yields 0.
func TotalVolume(packages []Package) float64 {
	var total float64
	for _, pkg := range packages {
		total += pkg.Volume()
	}
	return total
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			errors.New("weight must be greater than 0"))
	}
	p.weightKg = weightKg
	return nil
}

func (p *Package) setDimensionsCm(lengthCm, widthCm, heightCm float64) error {
	if lengthCm <= 0 || widthCm <= 0 || heightCm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("dimensions",
			errors.New("length, width and height must be greater than 0"))
	}

	p.lengthCm = lengthCm
	p.widthCm = widthCm
	p.heightCm = heightCm
	return nil
}
