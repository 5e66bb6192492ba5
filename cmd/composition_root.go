package cmd

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	httpadapter "fraktguiden/internal/adapters/in/http"
	"fraktguiden/internal/adapters/out/bring"
	"fraktguiden/internal/adapters/out/postgres"
	"fraktguiden/internal/core/application/usecases/commands"
	"fraktguiden/internal/core/application/usecases/queries"
	"fraktguiden/internal/core/domain/model/settings"
	"fraktguiden/internal/core/domain/model/shipment"
	"fraktguiden/internal/jobs"
)

const defaultQuoteRetention = 30 * 24 * time.Hour

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	settings       settings.Settings
	quoteRetention time.Duration
	rateClient     *bring.Client
	logger         *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	methodSettings, err := settings.NewSettings(settingsParams(config))
	if err != nil {
		return CompositionRoot{}, err
	}

	rateClient, err := bring.NewClient(logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		settings:       methodSettings,
		quoteRetention: quoteRetention(config),
		rateClient:     rateClient,
		logger:         logger,
	}, nil
}

func (c *CompositionRoot) CreateSaveQuoteCommandHandler() commands.SaveQuoteCommandHandler {
	var f commands.QuoteUoWFactory = FuncQuoteUoWFactory(func() commands.QuoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveQuoteCommandHandler(f)
}

func (c *CompositionRoot) CreatePruneQuotesCommandHandler() commands.PruneQuotesCommandHandler {
	var f commands.QuoteUoWFactory = FuncQuoteUoWFactory(func() commands.QuoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPruneQuotesCommandHandler(f)
}

func (c *CompositionRoot) CreateCalculateRatesQueryHandler() (queries.CalculateRatesQueryHandler, error) {
	return queries.NewCalculateRatesQueryHandler(
		c.settings,
		shipment.DefaultCarrierLimits(),
		c.rateClient,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetQuoteQueryHandler() queries.GetQuoteQueryHandler {
	return queries.NewGetQuoteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRecentQuotesQueryHandler() queries.GetRecentQuotesQueryHandler {
	return queries.NewGetRecentQuotesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreatePruneQuotesCommandHandler(), c.quoteRetention, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() (*httpadapter.Server, error) {
	calculateRatesHandler, err := c.CreateCalculateRatesQueryHandler()
	if err != nil {
		return nil, err
	}

	return httpadapter.NewServer(
		c.CreateSaveQuoteCommandHandler(),
		calculateRatesHandler,
		c.CreateGetQuoteQueryHandler(),
		c.CreateGetRecentQuotesQueryHandler(),
	), nil
}

type FuncQuoteUoWFactory func() commands.QuoteUoW

func (f FuncQuoteUoWFactory) Create() commands.QuoteUoW {
	return f()
}

// settingsParams maps the raw environment configuration onto the settings
// parameters the domain validates.
func settingsParams(config Config) settings.Params {
	return settings.Params{
		Enabled:               parseBool(config.BringEnabled),
		Title:                 config.BringTitle,
		HandlingFee:           config.BringHandlingFee,
		VAT:                   config.BringVAT,
		ServiceName:           config.BringServiceName,
		DisplayDescription:    parseBool(config.BringDisplayDescription),
		Services:              splitList(config.BringServices),
		FromPostcode:          config.BringFromPostcode,
		FromCountry:           config.BringFromCountry,
		PostOffice:            parseBool(config.BringPostOffice),
		RecipientNotification: parseBool(config.BringEvarsling),
		Locale:                config.ShopLocale,
		MaxProducts:           parseInt(config.BringMaxProducts),
		FlatRate:              config.BringFlatRate,
		Overrides:             parseOverrides(config.BringOverrides),
		Debug:                 parseBool(config.BringDebug),
		ClientURL:             config.ShopURL,
		Currency:              config.ShopCurrency,
		WeightUnit:            config.ShopWeightUnit,
		DimensionUnit:         config.ShopDimensionUnit,
	}
}

// parseOverrides reads per-service override entries from one environment
// value. Entries are separated by ";" and hold four ":"-separated fields:
// service id, fixed price, free shipping flag, free shipping threshold.
// Example: "SERVICEPAKKE:150::;EKSPRESS09::true:500".
func parseOverrides(raw string) map[string]settings.OverrideParams {
	overrides := make(map[string]settings.OverrideParams)
	for _, entry := range strings.Split(raw, ";") {
		fields := strings.Split(entry, ":")
		if len(fields) != 4 || fields[0] == "" {
			continue
		}

		overrides[fields[0]] = settings.OverrideParams{
			FixedPrice:            fields[1],
			FreeShipping:          parseBool(fields[2]),
			FreeShippingThreshold: fields[3],
		}
	}

	return overrides
}

func quoteRetention(config Config) time.Duration {
	hours := parseInt(config.QuoteRetentionHours)
	if hours <= 0 {
		return defaultQuoteRetention
	}

	return time.Duration(hours) * time.Hour
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}

	return list
}

func parseBool(raw string) bool {
	value, err := strconv.ParseBool(raw)
	return err == nil && value
}

func parseInt(raw string) int {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}

	return value
}
