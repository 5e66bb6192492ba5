// Package bring implements the outbound adapter for the Bring shipping
// guide API. It serializes package manifests into the carrier's query
// parameter scheme, builds complete rate requests from shop settings and
// the shipment destination, performs the HTTP call, and decodes the
// response into domain offers.
package bring
