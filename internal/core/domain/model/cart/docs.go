// Package cart provides value objects describing the shopper's cart as it is
// handed to a rate calculation. A cart is an ordered list of line items with
// quantities, optional physical dimensions and a monetary total.
//
// The package includes:
//   - LineItem: one cart row with quantity, dimensions, weight and unit price
//   - Cart: the ordered item list with total and item-count derivations
//
// Carts are ephemeral: they exist for a single calculation and are never
// persisted or shared between calculations.
package cart
