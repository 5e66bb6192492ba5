// Package shipment provides the physical-goods domain model for rate
// calculation: boxes derived from cart units, carrier size/weight limits, and
// packages that consolidate boxes for a single carrier-rated shipment leg.
//
// The package includes:
//   - Box: one shippable unit with dimensions normalized longest-axis first
//   - CarrierLimits: the carrier's maximum declared length and weight
//   - Package: an accumulating consolidation of boxes under the limits
//   - Manifest: the ordered set of packages produced for one cart
//
// Key business rules:
//   - Box dimensions are sorted descending once at creation; a box without
//     usable dimensions falls back to a minimal 1x1x1 unit
//   - A package never exceeds the carrier limits: boxes are admitted through
//     CanFit/Add, mirroring the carrier's declared-dimension billing model
//     (largest linear dimension plus total weight, not true 3-D fit)
//   - Packages and manifests are per-calculation objects and are never shared
//     across concurrent calculations
package shipment
