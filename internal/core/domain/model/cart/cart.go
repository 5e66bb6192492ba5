package cart

import (
	"errors"

	"fraktguiden/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrCartIsNotConstructed indicates that a Cart was not created through the
// NewCart constructor function.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

// Cart is the ordered collection of line items submitted for one rate
// calculation. An empty cart is valid; it simply produces no rates.
type Cart struct {
	items []LineItem

	guard guard.ConstructorGuard
}

// NewCart creates a cart from the given line items.
// Every item must itself be properly constructed.
func NewCart(items []LineItem) (Cart, error) {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return Cart{}, err
		}
	}

	return Cart{
		items: append([]LineItem(nil), items...),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the cart was created through the constructor.
func (c Cart) Validate() error {
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// Items returns the line items in their original order.
func (c Cart) Items() []LineItem {
	return append([]LineItem(nil), c.items...)
}

// ItemCount returns the number of units in the cart, summed over all line
// items regardless of whether they need shipping. This is the count the
// max-products threshold is compared against.
func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.quantity
	}
	return count
}

// Total returns the monetary cart total: the sum of unit price times quantity
// over all line items. Free-shipping thresholds are compared against it.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.RowTotal())
	}
	return total
}
