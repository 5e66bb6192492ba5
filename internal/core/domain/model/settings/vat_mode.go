package settings

import (
	"fmt"

	"fraktguiden/internal/pkg/errs"
)

// VATMode selects which carrier price a rate is built from: the amount with
// VAT included or the amount with VAT excluded.
type VATMode int

const (
	// UnknownVATMode represents an invalid or undefined mode.
	// This value (0) helps catch uninitialized VATMode values.
	UnknownVATMode VATMode = iota

	// IncludeVAT prices rates from the VAT-inclusive carrier amount.
	// This is the default mode.
	IncludeVAT

	// ExcludeVAT prices rates from the VAT-exclusive carrier amount.
	ExcludeVAT
)

// VATModeFromString parses the configured display-price value.
// An empty value falls back to the default IncludeVAT mode.
func VATModeFromString(s string) (VATMode, error) {
	switch s {
	case "", "include":
		return IncludeVAT, nil
	case "exclude":
		return ExcludeVAT, nil
	default:
		return UnknownVATMode, errs.NewValueIsInvalidErrorWithCause(
			"vat mode",
			fmt.Errorf("%q is not include or exclude", s),
		)
	}
}

// Validate checks if the VATMode value is valid.
func (m VATMode) Validate() error {
	if m != IncludeVAT && m != ExcludeVAT {
		return errs.NewValueIsInvalidError("vat mode")
	}
	return nil
}

// String returns the configuration representation of the mode.
func (m VATMode) String() string {
	switch m {
	case IncludeVAT:
		return "include"
	case ExcludeVAT:
		return "exclude"
	default:
		return "unknown"
	}
}
