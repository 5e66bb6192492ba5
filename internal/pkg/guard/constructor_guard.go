// Package guard provides the constructor-guard pattern used by commands,
// queries and value objects to detect zero-value instances that bypassed
// their constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// A zero-value guard fails validation, which lets domain objects reject
// instances created by direct struct initialization.
//
// Example:
//
//	type Settings struct {
//	    vat   string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSettings(vat string) (Settings, error) {
//	    return Settings{vat: vat, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (s Settings) Validate() error {
//	    return s.guard.Validate(ErrSettingsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was constructed properly.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
