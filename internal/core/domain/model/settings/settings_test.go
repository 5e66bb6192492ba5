package settings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fraktguiden/internal/core/domain/model/settings"
	"fraktguiden/internal/pkg/errs"
)

func completeParams() settings.Params {
	return settings.Params{
		Enabled:       true,
		FromPostcode:  "0150",
		FromCountry:   "NO",
		Currency:      "NOK",
		WeightUnit:    "kg",
		DimensionUnit: "cm",
		ClientURL:     "https://shop.example.com",
	}
}

func TestNewSettings(t *testing.T) {
	t.Run("should build a snapshot from complete params", func(t *testing.T) {
		s, err := settings.NewSettings(completeParams())

		require.NoError(t, err)
		assert.NoError(t, s.Validate())
		assert.True(t, s.Enabled())
		assert.Equal(t, "0150", s.FromPostcode())
		assert.Equal(t, "NO", s.FromCountry())
		assert.Equal(t, "https://shop.example.com", s.ClientURL())
	})

	t.Run("should fail when the shop currency is missing", func(t *testing.T) {
		params := completeParams()
		params.Currency = ""

		_, err := settings.NewSettings(params)

		assert.ErrorIs(t, err, settings.ErrConfigurationIncomplete)
	})

	t.Run("should fail when a measurement unit is missing", func(t *testing.T) {
		params := completeParams()
		params.WeightUnit = ""

		_, err := settings.NewSettings(params)

		assert.ErrorIs(t, err, settings.ErrConfigurationIncomplete)

		params = completeParams()
		params.DimensionUnit = ""

		_, err = settings.NewSettings(params)

		assert.ErrorIs(t, err, settings.ErrConfigurationIncomplete)
	})

	t.Run("should default the title and max products", func(t *testing.T) {
		s, err := settings.NewSettings(completeParams())

		require.NoError(t, err)
		assert.Equal(t, settings.DefaultTitle, s.Title())
		assert.Equal(t, settings.DefaultMaxProducts, s.MaxProducts())
	})

	t.Run("should keep a configured title and max products", func(t *testing.T) {
		params := completeParams()
		params.Title = "Bring"
		params.MaxProducts = 25

		s, err := settings.NewSettings(params)

		require.NoError(t, err)
		assert.Equal(t, "Bring", s.Title())
		assert.Equal(t, 25, s.MaxProducts())
	})

	t.Run("should parse the handling fee", func(t *testing.T) {
		params := completeParams()
		params.HandlingFee = "12.50"

		s, err := settings.NewSettings(params)

		require.NoError(t, err)
		assert.Equal(t, "12.5", s.HandlingFee().String())
	})

	t.Run("should default the handling fee to zero", func(t *testing.T) {
		s, err := settings.NewSettings(completeParams())

		require.NoError(t, err)
		assert.True(t, s.HandlingFee().IsZero())
	})

	t.Run("should fail on an unparsable handling fee", func(t *testing.T) {
		params := completeParams()
		params.HandlingFee = "lots"

		_, err := settings.NewSettings(params)

		assert.Error(t, err)
	})

	t.Run("should disable the flat rate fallback when blank", func(t *testing.T) {
		s, err := settings.NewSettings(completeParams())

		require.NoError(t, err)
		_, ok := s.FlatRate()
		assert.False(t, ok)
	})

	t.Run("should parse a configured flat rate", func(t *testing.T) {
		params := completeParams()
		params.FlatRate = "199.00"

		s, err := settings.NewSettings(params)

		require.NoError(t, err)
		rate, ok := s.FlatRate()
		require.True(t, ok)
		assert.Equal(t, "199", rate.String())
	})

	t.Run("should reject an unknown VAT mode", func(t *testing.T) {
		params := completeParams()
		params.VAT = "both"

		_, err := settings.NewSettings(params)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an unknown service name policy", func(t *testing.T) {
		params := completeParams()
		params.ServiceName = "NickName"

		_, err := settings.NewSettings(params)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail validation for zero value settings", func(t *testing.T) {
		var s settings.Settings

		assert.ErrorIs(t, s.Validate(), settings.ErrSettingsAreNotConstructed)
	})
}

func TestSettings_Language(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		want   string
	}{
		{"should map Norwegian bokmål to no", "nb_NO", "no"},
		{"should map Norwegian nynorsk to no", "nn_NO", "no"},
		{"should map Danish to da", "dk", "da"},
		{"should map Swedish to se", "sv_SE", "se"},
		{"should map Finnish to fi", "fi", "fi"},
		{"should fall back to English for unmapped locales", "de_DE", "en"},
		{"should fall back to English for an empty locale", "", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := completeParams()
			params.Locale = tt.locale

			s, err := settings.NewSettings(params)

			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Language())
		})
	}
}

func TestSettings_Overrides(t *testing.T) {
	t.Run("should key overrides by upper-cased service id", func(t *testing.T) {
		params := completeParams()
		params.Overrides = map[string]settings.OverrideParams{
			"servicepakke": {FixedPrice: "99"},
		}

		s, err := settings.NewSettings(params)

		require.NoError(t, err)
		override, ok := s.Overrides()["SERVICEPAKKE"]
		require.True(t, ok)
		require.NotNil(t, override.FixedPrice)
		assert.Equal(t, "99", override.FixedPrice.String())
	})

	t.Run("should treat unparsable override numbers as absent", func(t *testing.T) {
		params := completeParams()
		params.Overrides = map[string]settings.OverrideParams{
			"SERVICEPAKKE": {FixedPrice: "cheap", FreeShipping: true, FreeShippingThreshold: ""},
		}

		s, err := settings.NewSettings(params)

		require.NoError(t, err)
		override := s.Overrides()["SERVICEPAKKE"]
		assert.Nil(t, override.FixedPrice)
		assert.True(t, override.FreeShipping)
		assert.Nil(t, override.FreeShippingThreshold)
	})

	t.Run("should parse the free shipping threshold", func(t *testing.T) {
		params := completeParams()
		params.Overrides = map[string]settings.OverrideParams{
			"EKSPRESS09": {FreeShipping: true, FreeShippingThreshold: "500"},
		}

		s, err := settings.NewSettings(params)

		require.NoError(t, err)
		override := s.Overrides()["EKSPRESS09"]
		require.NotNil(t, override.FreeShippingThreshold)
		assert.Equal(t, "500", override.FreeShippingThreshold.String())
	})
}
