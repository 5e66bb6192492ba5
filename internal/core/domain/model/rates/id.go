package rates

import (
	"regexp"
	"strings"
)

// MethodID is the shipping-method identifier all rate rows are namespaced
// under.
const MethodID = "bring_fraktguiden"

// FlatRateRowID identifies the flat-rate fallback row offered when the cart
// exceeds the configured max-products threshold.
const FlatRateRowID = MethodID + ":alt_flat_rate"

var (
	rowIDPattern  = regexp.MustCompile(`^` + MethodID + `:(.+)$`)
	slugSeparator = regexp.MustCompile(`[^a-z0-9_-]+`)
)

// NewRowID composes a rate row identifier from the carrier product id:
// the method id plus the slugified product id.
func NewRowID(productID string) string {
	return MethodID + ":" + slugify(productID)
}

// ServiceKeyFromRowID extracts the case-normalized service key from a rate
// row identifier. The second return is false when the identifier does not
// belong to this shipping method.
func ServiceKeyFromRowID(rowID string) (string, bool) {
	matches := rowIDPattern.FindStringSubmatch(rowID)
	if matches == nil {
		return "", false
	}
	return strings.ToUpper(matches[1]), true
}

// slugify lowercases the product id and collapses every run of characters
// outside [a-z0-9_-] into a single hyphen. Underscores and hyphens survive
// unchanged so that upper-casing the slug recovers the product id the
// override table is keyed by (PA_DOREN, BPAKKE_DOR-DOR).
func slugify(s string) string {
	slug := slugSeparator.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}
