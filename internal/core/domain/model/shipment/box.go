package shipment

import (
	"errors"
	"sort"

	"fraktguiden/internal/pkg/errs"
	"fraktguiden/internal/pkg/guard"
)

// ErrBoxIsNotConstructed indicates that a Box was not created through the
// NewBox constructor function.
var ErrBoxIsNotConstructed = errors.New("Box must be created via NewBox constructor")

// fallbackDimension is the minimal unit assumed for products without
// maintained dimensions, in the cart's length unit. Using a real (if tiny)
// box keeps the packer away from degenerate zero-size input.
const fallbackDimension = 1.0

// Box represents one physical unit to ship, derived from one unit of one cart
// line item. Dimensions are stored sorted descending (longest axis first);
// this normalization happens once at creation so that downstream comparisons
// are orientation-insensitive. A box is immutable after construction.
type Box struct {
	length float64
	width  float64
	height float64
	weight float64

	guard guard.ConstructorGuard
}

// NewBox creates a box from raw product dimensions (cm) and weight (kg).
// When any dimension is missing or non-positive the box falls back to the
// minimal 1x1x1 unit. The weight must not be negative; a zero weight is
// valid for products without maintained weight.
func NewBox(length, width, height, weight float64) (Box, error) {
	if weight < 0 {
		return Box{}, errs.NewValueIsInvalidError("weight")
	}

	dims := []float64{length, width, height}
	if length <= 0 || width <= 0 || height <= 0 {
		dims = []float64{fallbackDimension, fallbackDimension, fallbackDimension}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(dims)))

	return Box{
		length: dims[0],
		width:  dims[1],
		height: dims[2],
		weight: weight,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the box was created through the constructor.
func (b Box) Validate() error {
	return b.guard.Validate(ErrBoxIsNotConstructed)
}

// Length returns the longest axis of the box in cm.
func (b Box) Length() float64 {
	return b.length
}

// Width returns the middle axis of the box in cm.
func (b Box) Width() float64 {
	return b.width
}

// Height returns the shortest axis of the box in cm.
func (b Box) Height() float64 {
	return b.height
}

// Weight returns the box weight in kg.
func (b Box) Weight() float64 {
	return b.weight
}

// BoundingLength returns the largest linear dimension of the box, which is
// what the carrier bills by. Because dimensions are sorted at construction
// this is always the stored length.
func (b Box) BoundingLength() float64 {
	return b.length
}
