package shipment

import (
	"errors"

	"fraktguiden/internal/pkg/errs"
	"fraktguiden/internal/pkg/guard"
)

// ErrCarrierLimitsAreNotConstructed indicates that CarrierLimits were not
// created through one of the constructor functions.
var ErrCarrierLimitsAreNotConstructed = errors.New("CarrierLimits must be created via NewCarrierLimits constructor")

// Bring parcel maximums: declared length and weight for the standard
// service family. Other service families can inject their own limits.
const (
	defaultMaxLengthCm = 240.0
	defaultMaxWeightKg = 35.0
)

// CarrierLimits holds the carrier's maximum declared package length (cm) and
// weight (kg). Input exceeding either limit, even as a single item, cannot be
// shipped by this method at all.
type CarrierLimits struct {
	maxLength float64
	maxWeight float64

	guard guard.ConstructorGuard
}

// NewCarrierLimits creates limits with explicit maximums.
// Both values must be positive.
func NewCarrierLimits(maxLength, maxWeight float64) (CarrierLimits, error) {
	limits := CarrierLimits{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		limits.setMaxLength(maxLength),
		limits.setMaxWeight(maxWeight),
	); err != nil {
		return CarrierLimits{}, err
	}

	return limits, nil
}

// DefaultCarrierLimits returns the limits of the standard Bring parcel
// service family.
func DefaultCarrierLimits() CarrierLimits {
	limits, _ := NewCarrierLimits(defaultMaxLengthCm, defaultMaxWeightKg)
	return limits
}

// Validate ensures the limits were created through a constructor.
func (l CarrierLimits) Validate() error {
	return l.guard.Validate(ErrCarrierLimitsAreNotConstructed)
}

// MaxLength returns the maximum declared package length in cm.
func (l CarrierLimits) MaxLength() float64 {
	return l.maxLength
}

// MaxWeight returns the maximum package weight in kg.
func (l CarrierLimits) MaxWeight() float64 {
	return l.maxWeight
}

// Allows reports whether a single box fits within the limits on its own.
func (l CarrierLimits) Allows(box Box) bool {
	return box.BoundingLength() <= l.maxLength && box.Weight() <= l.maxWeight
}

func (l *CarrierLimits) setMaxLength(maxLength float64) error {
	if maxLength <= 0 {
		return errs.NewValueIsInvalidError("maxLength")
	}

	l.maxLength = maxLength
	return nil
}

func (l *CarrierLimits) setMaxWeight(maxWeight float64) error {
	if maxWeight <= 0 {
		return errs.NewValueIsInvalidError("maxWeight")
	}

	l.maxWeight = maxWeight
	return nil
}
