package services

import (
	"errors"
	"sort"

	"fraktguiden/internal/core/domain/model/shipment"
)

// ErrPackingInfeasible is returned when the packer would produce a package
// violating the carrier limits. Given the extractor's pre-check this should
// not occur; it is a safety net for callers invoking the packer directly,
// such as the admin rate-lookup path.
var ErrPackingInfeasible = errors.New("packing produced a package exceeding the carrier limits")

// Packer consolidates boxes into the minimum number of carrier-legal
// packages.
//
// The strategy is greedy and weight-driven rather than an exact bin-packing
// search: boxes are placed heaviest first into the first open package that
// stays within both limits, which is O(n log n) and more than adequate for
// carton counts in the dozens. A merged package's bounding length is the
// maximum over its boxes, mirroring the carrier's declared-dimension billing
// model of largest linear dimension plus total weight.
type Packer struct{}

// NewPacker creates a new Packer instance.
func NewPacker() Packer {
	return Packer{}
}

// Pack consolidates the boxes into a manifest respecting the carrier limits.
//
// With consolidate set, boxes from different line items may share a package;
// this is the default mode. Without it every box ships in its own package,
// in input order. Boxes already exceeding the limits on their own fail with
// ErrCapacityExceeded; a manifest that somehow violates the limits after
// packing fails with ErrPackingInfeasible and is withheld entirely.
//
// Packing is deterministic: identical input always yields an identical
// manifest, so repeated carrier calls for the same cart are reproducible.
func (p Packer) Pack(
	boxes []shipment.Box,
	limits shipment.CarrierLimits,
	consolidate bool,
) (shipment.Manifest, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}

	for _, box := range boxes {
		if err := box.Validate(); err != nil {
			return nil, err
		}
		if !limits.Allows(box) {
			return nil, ErrCapacityExceeded
		}
	}

	var manifest shipment.Manifest
	var err error
	if consolidate {
		manifest, err = p.consolidate(boxes, limits)
	} else {
		manifest, err = p.oneBoxPerPackage(boxes, limits)
	}
	if err != nil {
		return nil, err
	}

	for _, pkg := range manifest {
		if !pkg.WithinLimits() {
			return nil, ErrPackingInfeasible
		}
	}

	return manifest, nil
}

// consolidate places boxes heaviest first into the first open package with
// room left. The sort is stable, so equal boxes keep their input order and
// identical carts always merge identically.
func (p Packer) consolidate(boxes []shipment.Box, limits shipment.CarrierLimits) (shipment.Manifest, error) {
	sorted := append([]shipment.Box(nil), boxes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Weight() != sorted[j].Weight() {
			return sorted[i].Weight() > sorted[j].Weight()
		}
		return sorted[i].BoundingLength() > sorted[j].BoundingLength()
	})

	var open shipment.Manifest
	for _, box := range sorted {
		placed := false
		for _, pkg := range open {
			if pkg.CanFit(box) {
				if err := pkg.Add(box); err != nil {
					return nil, err
				}
				placed = true
				break
			}
		}

		if placed {
			continue
		}

		pkg, err := shipment.NewPackage(limits)
		if err != nil {
			return nil, err
		}
		if err = pkg.Add(box); err != nil {
			return nil, err
		}
		open = append(open, pkg)
	}

	return open, nil
}

// oneBoxPerPackage emits one package per box, preserving input order.
func (p Packer) oneBoxPerPackage(boxes []shipment.Box, limits shipment.CarrierLimits) (shipment.Manifest, error) {
	manifest := make(shipment.Manifest, 0, len(boxes))
	for _, box := range boxes {
		pkg, err := shipment.NewPackage(limits)
		if err != nil {
			return nil, err
		}
		if err = pkg.Add(box); err != nil {
			return nil, err
		}
		manifest = append(manifest, pkg)
	}
	return manifest, nil
}
