package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// Shipping method configuration, raw as read from the environment.
	BringEnabled            string
	BringTitle              string
	BringHandlingFee        string
	BringVAT                string
	BringServiceName        string
	BringDisplayDescription string
	BringServices           string
	BringFromPostcode       string
	BringFromCountry        string
	BringPostOffice         string
	BringEvarsling          string
	BringMaxProducts        string
	BringFlatRate           string
	BringOverrides          string
	BringDebug              string

	// Shop-wide prerequisites.
	ShopURL           string
	ShopLocale        string
	ShopCurrency      string
	ShopWeightUnit    string
	ShopDimensionUnit string

	QuoteRetentionHours string
}
