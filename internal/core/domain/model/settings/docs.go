// Package settings provides the typed, validated configuration snapshot a
// rate calculation runs against.
//
// The original settings store is a flat key/value map read ad hoc; here the
// raw values are interpreted exactly once, in NewSettings, into an immutable
// Settings value with enumerated fields and defaults. A calculation receives
// the snapshot as an explicit dependency, which keeps the core independently
// testable without a host platform.
//
// Key business rules:
//   - Missing weight unit, dimension unit or currency disables the whole
//     shipping method upfront (ErrConfigurationIncomplete)
//   - VAT mode and naming policy are enumerations with include/DisplayName
//     defaults
//   - A blanked flat rate disables the max-products fallback entirely
//   - Per-service override values that do not parse as numbers are treated
//     as absent
package settings
