package shipment

import (
	"errors"
)

var (
	// ErrPackageIsNotConstructed indicates that a Package was not created
	// through the NewPackage constructor function.
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

	// ErrBoxDoesNotFit indicates that adding a box would push the package
	// over the carrier limits.
	ErrBoxDoesNotFit = errors.New("box does not fit in this package")
)

// Package is one or more boxes consolidated for a single carrier-rated
// shipment leg. It accumulates boxes during packing and tracks the aggregate
// weight and the bounding length (the largest linear dimension needed to
// describe the package to the carrier). Boxes are logically stacked rather
// than geometrically arranged, matching the carrier's declared-dimension
// billing model.
//
// A package never exceeds its carrier limits: boxes are admitted through
// CanFit/Add only.
type Package struct {
	limits         CarrierLimits
	boxes          []Box
	weight         float64
	boundingLength float64

	isConstructed bool
}

// NewPackage creates an empty package bound to the given carrier limits.
func NewPackage(limits CarrierLimits) (*Package, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}

	return &Package{
		limits:        limits,
		isConstructed: true,
	}, nil
}

// Validate ensures the package was created through the constructor.
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

// CanFit reports whether the box can be added without exceeding the carrier
// limits. The resulting bounding length is the maximum of the current
// bounding length and the box's own.
func (p *Package) CanFit(box Box) bool {
	if box.Validate() != nil {
		return false
	}

	newWeight := p.weight + box.Weight()
	newLength := max(p.boundingLength, box.BoundingLength())
	return newWeight <= p.limits.MaxWeight() && newLength <= p.limits.MaxLength()
}

// Add places the box into the package, updating the aggregate weight and
// bounding length. Returns ErrBoxDoesNotFit when the box would push the
// package over the carrier limits.
func (p *Package) Add(box Box) error {
	if err := box.Validate(); err != nil {
		return err
	}

	if !p.CanFit(box) {
		return ErrBoxDoesNotFit
	}

	p.boxes = append(p.boxes, box)
	p.weight += box.Weight()
	p.boundingLength = max(p.boundingLength, box.BoundingLength())
	return nil
}

// Boxes returns the boxes in insertion order.
func (p *Package) Boxes() []Box {
	return append([]Box(nil), p.boxes...)
}

// BoxCount returns the number of boxes in the package.
func (p *Package) BoxCount() int {
	return len(p.boxes)
}

// Weight returns the aggregate weight of all boxes in kg.
func (p *Package) Weight() float64 {
	return p.weight
}

// BoundingLength returns the largest linear dimension over all boxes in cm.
func (p *Package) BoundingLength() float64 {
	return p.boundingLength
}

// WithinLimits reports whether the package currently respects the carrier
// limits. Given the CanFit/Add invariant this always holds; the packer still
// re-checks it as a safety net before releasing a manifest.
func (p *Package) WithinLimits() bool {
	return p.weight <= p.limits.MaxWeight() && p.boundingLength <= p.limits.MaxLength()
}

// Manifest is the ordered sequence of packages produced for one cart.
// Order does not affect carrier pricing but is stable, so identical input
// always produces identical API calls.
type Manifest []*Package

// TotalWeight returns the weight summed over all packages in kg.
func (m Manifest) TotalWeight() float64 {
	total := 0.0
	for _, p := range m {
		total += p.Weight()
	}
	return total
}

// BoxCount returns the number of boxes summed over all packages.
func (m Manifest) BoxCount() int {
	count := 0
	for _, p := range m {
		count += p.BoxCount()
	}
	return count
}
