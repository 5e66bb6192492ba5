package rates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fraktguiden/internal/core/domain/model/rates"
)

func TestNewRowID(t *testing.T) {
	tests := []struct {
		name      string
		productID string
		want      string
	}{
		{"should slugify an upper-cased product id", "SERVICEPAKKE", "bring_fraktguiden:servicepakke"},
		{"should keep underscores", "PA_DOREN", "bring_fraktguiden:pa_doren"},
		{"should keep hyphens alongside underscores", "BPAKKE_DOR-DOR", "bring_fraktguiden:bpakke_dor-dor"},
		{"should collapse other separator runs into one hyphen", "CARGO GROUPAGE", "bring_fraktguiden:cargo-groupage"},
		{"should keep digits", "EKSPRESS09", "bring_fraktguiden:ekspress09"},
		{"should trim leading and trailing hyphens", "/SERVICEPAKKE/", "bring_fraktguiden:servicepakke"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rates.NewRowID(tt.productID))
		})
	}
}

func TestServiceKeyFromRowID(t *testing.T) {
	t.Run("should recover the upper-cased service key", func(t *testing.T) {
		key, ok := rates.ServiceKeyFromRowID("bring_fraktguiden:servicepakke")

		assert.True(t, ok)
		assert.Equal(t, "SERVICEPAKKE", key)
	})

	t.Run("should round-trip product ids with underscores and hyphens", func(t *testing.T) {
		for _, productID := range []string{"PA_DOREN", "BPAKKE_DOR-DOR", "MINIPAKKE"} {
			key, ok := rates.ServiceKeyFromRowID(rates.NewRowID(productID))

			assert.True(t, ok)
			assert.Equal(t, productID, key)
		}
	})

	t.Run("should not match rows from other shipping methods", func(t *testing.T) {
		_, ok := rates.ServiceKeyFromRowID("other_method:express")

		assert.False(t, ok)
	})

	t.Run("should not match the bare method id", func(t *testing.T) {
		_, ok := rates.ServiceKeyFromRowID("bring_fraktguiden:")

		assert.False(t, ok)
	})
}

func TestFlatRateRowID(t *testing.T) {
	t.Run("should belong to this shipping method", func(t *testing.T) {
		key, ok := rates.ServiceKeyFromRowID(rates.FlatRateRowID)

		assert.True(t, ok)
		assert.Equal(t, "ALT_FLAT_RATE", key)
	})
}
