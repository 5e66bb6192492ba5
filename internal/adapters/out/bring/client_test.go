package bring_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fraktguiden/internal/adapters/out/bring"
	"fraktguiden/internal/core/domain/model/rates"
	"fraktguiden/internal/core/ports"
)

const rateResponseBody = `{
	"Product": [
		{
			"ProductId": "SERVICEPAKKE",
			"GuiInformation": {
				"DisplayName": "Klimanøytral Servicepakke",
				"ProductName": "Servicepakke",
				"DescriptionText": "Pakken leveres til mottakers lokale hentested."
			},
			"Price": {
				"PackagePriceWithoutAdditionalServices": {
					"AmountWithVAT": "165.00",
					"AmountWithoutVAT": "132.00"
				}
			}
		},
		{
			"ProductId": "EKSPRESS09",
			"GuiInformation": {
				"DisplayName": "Bedriftspakke Ekspress-Over natten 09",
				"ProductName": "Ekspress 09",
				"DescriptionText": "Levert innen kl 09 neste dag."
			},
			"Price": {
				"PackagePriceWithoutAdditionalServices": {
					"AmountWithVAT": "720.00",
					"AmountWithoutVAT": "576.00"
				}
			}
		}
	]
}`

const singleProductBody = `{
	"Product": {
		"ProductId": "SERVICEPAKKE",
		"GuiInformation": {
			"DisplayName": "Klimanøytral Servicepakke",
			"ProductName": "Servicepakke",
			"DescriptionText": ""
		},
		"Price": {
			"PackagePriceWithoutAdditionalServices": {
				"AmountWithVAT": "165.00",
				"AmountWithoutVAT": "132.00"
			}
		}
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *bring.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := bring.NewClient(slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	client.SetEndpoint(server.URL)

	return client
}

func TestClient_FetchOffers(t *testing.T) {
	shipTo := rates.Destination{Postcode: "5006", Country: "NO"}

	t.Run("should decode the product list into offers", func(t *testing.T) {
		var gotQuery string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			_, _ = w.Write([]byte(rateResponseBody))
		})
		manifest := testManifest(t, mustBox(t, 30, 20, 10, 2))

		offers, err := client.FetchOffers(context.Background(), testSettings(t), shipTo, manifest)

		require.NoError(t, err)
		require.Len(t, offers, 2)
		assert.Equal(t, "SERVICEPAKKE", offers[0].ProductID)
		assert.Equal(t, "Klimanøytral Servicepakke", offers[0].DisplayName)
		assert.Equal(t, "Servicepakke", offers[0].ProductName)
		assert.Equal(t, "165", offers[0].PriceIncVAT.String())
		assert.Equal(t, "132", offers[0].PriceExVAT.String())
		assert.Equal(t, "EKSPRESS09", offers[1].ProductID)
		assert.Contains(t, gotQuery, "to=5006")
		assert.Contains(t, gotQuery, "numberOfPackages=1")
	})

	t.Run("should normalize a bare product object into one offer", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(singleProductBody))
		})
		manifest := testManifest(t, mustBox(t, 30, 20, 10, 2))

		offers, err := client.FetchOffers(context.Background(), testSettings(t), shipTo, manifest)

		require.NoError(t, err)
		require.Len(t, offers, 1)
		assert.Equal(t, "SERVICEPAKKE", offers[0].ProductID)
	})

	t.Run("should report carrier unavailable on non-200 status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		manifest := testManifest(t, mustBox(t, 30, 20, 10, 2))

		_, err := client.FetchOffers(context.Background(), testSettings(t), shipTo, manifest)

		assert.ErrorIs(t, err, ports.ErrCarrierUnavailable)
	})

	t.Run("should report empty response when no products match", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"Product": []}`))
		})
		manifest := testManifest(t, mustBox(t, 30, 20, 10, 2))

		_, err := client.FetchOffers(context.Background(), testSettings(t), shipTo, manifest)

		assert.ErrorIs(t, err, ports.ErrEmptyCarrierResponse)
	})

	t.Run("should report empty response on a malformed body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		})
		manifest := testManifest(t, mustBox(t, 30, 20, 10, 2))

		_, err := client.FetchOffers(context.Background(), testSettings(t), shipTo, manifest)

		assert.ErrorIs(t, err, ports.ErrEmptyCarrierResponse)
	})

	t.Run("should report carrier unavailable when the server is down", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()

		client, err := bring.NewClient(slog.New(slog.DiscardHandler))
		require.NoError(t, err)
		client.SetEndpoint(server.URL)
		manifest := testManifest(t, mustBox(t, 30, 20, 10, 2))

		_, err = client.FetchOffers(context.Background(), testSettings(t), shipTo, manifest)

		assert.ErrorIs(t, err, ports.ErrCarrierUnavailable)
	})
}
