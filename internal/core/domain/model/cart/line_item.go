package cart

import (
	"errors"

	"fraktguiden/internal/pkg/errs"
	"fraktguiden/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLineItemIsNotConstructed indicates that a LineItem was not created
// through the NewLineItem constructor function.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one row of the shopper's cart: a product reference, a positive
// quantity, optional physical dimensions (cm) and weight (kg), the unit price
// and a flag telling whether the product needs shipping at all.
//
// Dimensions and weight may be zero when the shop has not maintained them on
// the product; the box extractor substitutes a minimal 1x1x1 unit in that case.
type LineItem struct {
	productRef       string
	quantity         int
	length           float64
	width            float64
	height           float64
	weight           float64
	requiresShipping bool
	unitPrice        decimal.Decimal

	guard guard.ConstructorGuard
}

// NewLineItem creates a validated cart line item.
// Dimensions are given in cm, weight in kg; zero values mean "not maintained".
func NewLineItem(
	productRef string,
	quantity int,
	length, width, height float64,
	weight float64,
	requiresShipping bool,
	unitPrice decimal.Decimal,
) (LineItem, error) {
	item := LineItem{
		requiresShipping: requiresShipping,
		unitPrice:        unitPrice,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductRef(productRef),
		item.setQuantity(quantity),
		item.setDimensions(length, width, height),
		item.setWeight(weight),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the line item was created through the constructor.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductRef returns the product reference (SKU or slug) of the item.
func (i LineItem) ProductRef() string {
	return i.productRef
}

// Quantity returns the number of units in the cart.
func (i LineItem) Quantity() int {
	return i.quantity
}

// Length returns the product length in cm, zero when not maintained.
func (i LineItem) Length() float64 {
	return i.length
}

// Width returns the product width in cm, zero when not maintained.
func (i LineItem) Width() float64 {
	return i.width
}

// Height returns the product height in cm, zero when not maintained.
func (i LineItem) Height() float64 {
	return i.height
}

// Weight returns the product weight in kg, zero when not maintained.
func (i LineItem) Weight() float64 {
	return i.weight
}

// RequiresShipping reports whether the product is physical and must be shipped.
func (i LineItem) RequiresShipping() bool {
	return i.requiresShipping
}

// UnitPrice returns the price of a single unit.
func (i LineItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// HasDimensions reports whether all three dimensions are present and positive.
func (i LineItem) HasDimensions() bool {
	return i.length > 0 && i.width > 0 && i.height > 0
}

// RowTotal returns unit price multiplied by quantity.
func (i LineItem) RowTotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *LineItem) setProductRef(productRef string) error {
	if productRef == "" {
		return errs.NewValueIsRequiredError("productRef")
	}

	i.productRef = productRef
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	i.quantity = quantity
	return nil
}

func (i *LineItem) setDimensions(length, width, height float64) error {
	if length < 0 || width < 0 || height < 0 {
		return errs.NewValueIsInvalidError("dimensions")
	}

	i.length = length
	i.width = width
	i.height = height
	return nil
}

func (i *LineItem) setWeight(weight float64) error {
	if weight < 0 {
		return errs.NewValueIsInvalidError("weight")
	}

	i.weight = weight
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidError("unitPrice")
	}

	i.unitPrice = unitPrice
	return nil
}
