package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fraktguiden/internal/core/domain/model/rates"
	"fraktguiden/internal/core/domain/model/settings"
	"fraktguiden/internal/core/domain/services"
)

func mustSettings(t *testing.T, mutate func(*settings.Params)) settings.Settings {
	t.Helper()

	params := settings.Params{
		Enabled:       true,
		FromPostcode:  "0150",
		FromCountry:   "NO",
		Currency:      "NOK",
		WeightUnit:    "kg",
		DimensionUnit: "cm",
		ClientURL:     "https://shop.example.com",
	}
	if mutate != nil {
		mutate(&params)
	}

	s, err := settings.NewSettings(params)
	require.NoError(t, err)

	return s
}

func sampleOffers() []rates.Offer {
	return []rates.Offer{
		{
			ProductID:   "SERVICEPAKKE",
			DisplayName: "Klimanøytral Servicepakke",
			ProductName: "Servicepakke",
			Description: "Delivered to the local pickup point",
			PriceExVAT:  decimal.NewFromInt(132),
			PriceIncVAT: decimal.NewFromInt(165),
		},
		{
			ProductID:   "EKSPRESS09",
			DisplayName: "Bedriftspakke Ekspress-Over natten 09",
			ProductName: "Ekspress09",
			Description: "Delivered before 09:00",
			PriceExVAT:  decimal.NewFromInt(240),
			PriceIncVAT: decimal.NewFromInt(300),
		},
	}
}

func TestRateAssembler_Assemble(t *testing.T) {
	assembler := services.NewRateAssembler()

	t.Run("should build one row per offer with VAT-inclusive prices", func(t *testing.T) {
		s := mustSettings(t, nil)

		rows, err := assembler.Assemble(sampleOffers(), s)

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "bring_fraktguiden:servicepakke", rows[0].ID)
		assert.Equal(t, "Klimanøytral Servicepakke", rows[0].Label)
		assert.Equal(t, "165", rows[0].Cost.String())
		assert.Equal(t, "bring_fraktguiden:ekspress09", rows[1].ID)
		assert.Equal(t, "300", rows[1].Cost.String())
	})

	t.Run("should price rows without VAT when configured", func(t *testing.T) {
		s := mustSettings(t, func(p *settings.Params) {
			p.VAT = "exclude"
		})

		rows, err := assembler.Assemble(sampleOffers(), s)

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "132", rows[0].Cost.String())
		assert.Equal(t, "240", rows[1].Cost.String())
	})

	t.Run("should add the handling fee to every row", func(t *testing.T) {
		s := mustSettings(t, func(p *settings.Params) {
			p.HandlingFee = "25.50"
		})

		rows, err := assembler.Assemble(sampleOffers(), s)

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "190.5", rows[0].Cost.String())
		assert.Equal(t, "325.5", rows[1].Cost.String())
	})

	t.Run("should keep only services on the allow-list", func(t *testing.T) {
		s := mustSettings(t, func(p *settings.Params) {
			p.Services = []string{"EKSPRESS09"}
		})

		rows, err := assembler.Assemble(sampleOffers(), s)

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "bring_fraktguiden:ekspress09", rows[0].ID)
	})

	t.Run("should keep every service when no allow-list is configured", func(t *testing.T) {
		s := mustSettings(t, nil)

		rows, err := assembler.Assemble(sampleOffers(), s)

		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("should label rows with the product name when configured", func(t *testing.T) {
		s := mustSettings(t, func(p *settings.Params) {
			p.ServiceName = "ProductName"
		})

		rows, err := assembler.Assemble(sampleOffers(), s)

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Servicepakke", rows[0].Label)
	})

	t.Run("should append the service description when configured", func(t *testing.T) {
		s := mustSettings(t, func(p *settings.Params) {
			p.DisplayDescription = true
		})

		rows, err := assembler.Assemble(sampleOffers(), s)

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Klimanøytral Servicepakke: Delivered to the local pickup point", rows[0].Label)
	})

	t.Run("should return no rows for no offers", func(t *testing.T) {
		s := mustSettings(t, nil)

		rows, err := assembler.Assemble(nil, s)

		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("should reject zero value settings", func(t *testing.T) {
		_, err := assembler.Assemble(sampleOffers(), settings.Settings{})

		assert.ErrorIs(t, err, settings.ErrSettingsAreNotConstructed)
	})
}
