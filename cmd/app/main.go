package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fraktguiden/cmd"
	"fraktguiden/internal/generated/servers"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(gorm_postgres.Open(postgresDSN(configs)), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Error assembling application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		BringEnabled:            goDotEnvVariable("BRING_ENABLED"),
		BringTitle:              goDotEnvVariable("BRING_TITLE"),
		BringHandlingFee:        goDotEnvVariable("BRING_HANDLING_FEE"),
		BringVAT:                goDotEnvVariable("BRING_VAT"),
		BringServiceName:        goDotEnvVariable("BRING_SERVICE_NAME"),
		BringDisplayDescription: goDotEnvVariable("BRING_DISPLAY_DESCRIPTION"),
		BringServices:           goDotEnvVariable("BRING_SERVICES"),
		BringFromPostcode:       goDotEnvVariable("BRING_FROM_POSTCODE"),
		BringFromCountry:        goDotEnvVariable("BRING_FROM_COUNTRY"),
		BringPostOffice:         goDotEnvVariable("BRING_POST_OFFICE"),
		BringEvarsling:          goDotEnvVariable("BRING_EVARSLING"),
		BringMaxProducts:        goDotEnvVariable("BRING_MAX_PRODUCTS"),
		BringFlatRate:           goDotEnvVariable("BRING_FLAT_RATE"),
		BringOverrides:          goDotEnvVariable("BRING_OVERRIDES"),
		BringDebug:              goDotEnvVariable("BRING_DEBUG"),

		ShopURL:           goDotEnvVariable("SHOP_URL"),
		ShopLocale:        goDotEnvVariable("SHOP_LOCALE"),
		ShopCurrency:      goDotEnvVariable("SHOP_CURRENCY"),
		ShopWeightUnit:    goDotEnvVariable("SHOP_WEIGHT_UNIT"),
		ShopDimensionUnit: goDotEnvVariable("SHOP_DIMENSION_UNIT"),

		QuoteRetentionHours: goDotEnvVariable("QUOTE_RETENTION_HOURS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func postgresDSN(config cmd.Config) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost,
		config.DBPort,
		config.DBUser,
		config.DBPassword,
		config.DBName,
		config.DBSslMode,
	)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server, err := app.CreateHTTPServer()
	if err != nil {
		log.Fatalf("Error creating HTTP server: %v", err)
	}

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
