package bring

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"fraktguiden/internal/core/domain/model/rates"
	"fraktguiden/internal/core/domain/model/settings"
	"fraktguiden/internal/core/domain/model/shipment"
	"fraktguiden/internal/pkg/errs"
)

// Endpoint is the Bring shipping guide rate endpoint.
const Endpoint = "https://api.bring.com/shippingguide/products/all.json"

// RateRequest is a fully assembled carrier request: the endpoint plus the
// encoded query parameters describing the shipment and the requested
// products.
type RateRequest struct {
	Endpoint string
	Query    url.Values
}

// URL returns the complete request URL with the encoded query string.
func (r *RateRequest) URL() string {
	return r.Endpoint + "?" + r.Query.Encode()
}

// PackageParams serializes a package manifest into the carrier's indexed
// query parameter scheme: numberOfPackages, then for each package (1-based)
// its bounding dimensions in cm and weight in whole grams.
//
// Width is the widest box in the package and height is the stacked height of
// all boxes, matching the declared-dimension billing model the packer
// consolidates against.
func PackageParams(m shipment.Manifest) url.Values {
	params := url.Values{}
	params.Set("numberOfPackages", strconv.Itoa(len(m)))

	for i, pkg := range m {
		var width, height float64
		for _, box := range pkg.Boxes() {
			width = math.Max(width, box.Width())
			height += box.Height()
		}

		n := i + 1
		params.Set(fmt.Sprintf("length%d", n), formatDimension(pkg.BoundingLength()))
		params.Set(fmt.Sprintf("width%d", n), formatDimension(width))
		params.Set(fmt.Sprintf("height%d", n), formatDimension(height))
		params.Set(fmt.Sprintf("weightInGrams%d", n), strconv.Itoa(grams(pkg.Weight())))
	}

	return params
}

// BuildRateRequest merges the serialized package manifest with the shipment
// context derived from the shop settings and the destination. Empty values
// are omitted rather than sent as empty strings, and one repeated "product"
// parameter is appended per enabled service.
func BuildRateRequest(
	s settings.Settings,
	shipTo rates.Destination,
	m shipment.Manifest,
) (*RateRequest, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if len(m) == 0 {
		return nil, errs.NewValueIsRequiredError("manifest")
	}

	params := PackageParams(m)
	params.Set("clientUrl", s.ClientURL())
	params.Set("from", s.FromPostcode())
	params.Set("fromCountry", s.FromCountry())
	params.Set("to", shipTo.Postcode)
	params.Set("toCountry", shipTo.Country)
	params.Set("postingAtPostOffice", strconv.FormatBool(s.PostOffice()))
	params.Set("language", s.Language())

	if s.RecipientNotification() {
		params.Set("additional", "evarsling")
	}

	for key, values := range params {
		if len(values) == 0 || values[0] == "" {
			delete(params, key)
		}
	}

	for _, service := range s.Services() {
		params.Add("product", service)
	}

	return &RateRequest{Endpoint: Endpoint, Query: params}, nil
}

func formatDimension(cm float64) string {
	return strconv.FormatFloat(cm, 'f', -1, 64)
}

func grams(kg float64) int {
	return int(math.Round(kg * 1000))
}
