// Package services provides the domain services that make up the rate
// calculation pipeline: extracting boxes from the cart, consolidating them
// into carrier-legal packages, assembling priced rate rows from carrier
// offers, and applying the pro-tier price overrides.
//
// The package includes:
//   - BoxExtractor: cart line items to one box per unit, with capacity pre-check
//   - Packer: greedy heaviest-first consolidation into the minimum package count
//   - RateAssembler: carrier offers to filtered, priced, labeled rate rows
//   - PriceOverrides: per-service fixed-price and free-shipping post-processing
//
// All services are stateless; each calculation passes its own cart, limits
// and settings snapshot, so nothing is shared between concurrent calculations.
package services
