package services

import (
	"errors"

	"fraktguiden/internal/core/domain/model/cart"
	"fraktguiden/internal/core/domain/model/shipment"
)

// ErrCapacityExceeded is returned when a single item is too large or too
// heavy to ever ship with this carrier, even alone in its own package.
// One such item makes the entire cart unshippable by this method, so the
// calculation aborts with no partial result.
var ErrCapacityExceeded = errors.New("item exceeds the carrier's package limits")

// BoxExtractor converts cart line items into individual boxes, one per unit
// of quantity. It is the first stage of the packing pipeline and guards the
// packer against input that could never fit a package.
type BoxExtractor struct{}

// NewBoxExtractor creates a new BoxExtractor instance.
func NewBoxExtractor() BoxExtractor {
	return BoxExtractor{}
}

// Extract produces one box per unit of every line item that needs shipping.
//
// Items without all three dimensions fall back to the minimal 1x1x1 unit;
// weight comes from the item or defaults to zero. Any single box exceeding
// the carrier limits fails the whole extraction with ErrCapacityExceeded.
// An empty result is valid and means the cart holds nothing shippable.
func (e BoxExtractor) Extract(c cart.Cart, limits shipment.CarrierLimits) ([]shipment.Box, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := limits.Validate(); err != nil {
		return nil, err
	}

	var boxes []shipment.Box
	for _, item := range c.Items() {
		if !item.RequiresShipping() {
			continue
		}

		length, width, height := 0.0, 0.0, 0.0
		if item.HasDimensions() {
			length, width, height = item.Length(), item.Width(), item.Height()
		}

		for range item.Quantity() {
			box, err := shipment.NewBox(length, width, height, item.Weight())
			if err != nil {
				return nil, err
			}

			if !limits.Allows(box) {
				return nil, ErrCapacityExceeded
			}

			boxes = append(boxes, box)
		}
	}

	return boxes, nil
}
