// Package rates provides the read-side model of a rate calculation: the
// carrier's service offers as decoded from its API, the priced and labeled
// rate rows handed back to the caller, and the pro-tier per-service override
// records.
//
// Offers and rows are plain data carriers in the style of query responses:
// offers arrive from the carrier adapter, rows are produced by the rate
// assembler and may be mutated in place by the price override engine. All
// monetary amounts are decimals.
package rates
