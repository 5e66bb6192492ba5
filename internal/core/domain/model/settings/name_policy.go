package settings

import (
	"fmt"

	"fraktguiden/internal/pkg/errs"
)

// NamePolicy selects which of the carrier's display texts labels a service:
// the marketing display name or the formal product name.
type NamePolicy int

const (
	// UnknownNamePolicy represents an invalid or undefined policy.
	UnknownNamePolicy NamePolicy = iota

	// UseDisplayName labels services with the carrier's DisplayName text.
	// This is the default policy.
	UseDisplayName

	// UseProductName labels services with the carrier's ProductName text.
	UseProductName
)

// NamePolicyFromString parses the configured service-name value.
// An empty value falls back to the default UseDisplayName policy.
func NamePolicyFromString(s string) (NamePolicy, error) {
	switch s {
	case "", "DisplayName":
		return UseDisplayName, nil
	case "ProductName":
		return UseProductName, nil
	default:
		return UnknownNamePolicy, errs.NewValueIsInvalidErrorWithCause(
			"name policy",
			fmt.Errorf("%q is not DisplayName or ProductName", s),
		)
	}
}

// Validate checks if the NamePolicy value is valid.
func (p NamePolicy) Validate() error {
	if p != UseDisplayName && p != UseProductName {
		return errs.NewValueIsInvalidError("name policy")
	}
	return nil
}

// String returns the configuration representation of the policy.
func (p NamePolicy) String() string {
	switch p {
	case UseDisplayName:
		return "DisplayName"
	case UseProductName:
		return "ProductName"
	default:
		return "unknown"
	}
}
