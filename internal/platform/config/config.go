package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	EnableDBCheck   bool
	JWTSecret       string
	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`
	PosthogAPIKey   string `mapstructure:"POSTHOG_API_KEY"`
	RateLimit       string // ulule/limiter format, e.g. "100-M"

	// Bank of Israel rate source
	BankRateURL     string
	BankRateTimeout time.Duration
	BankRateEnabled bool

	// Pricing
	BusinessLocation          *time.Location
	CurrencyRateMarginPercent decimal.Decimal
	DefaultPortOfOrigin       string
	DefaultContainerSizeCBM   int
	PricingRounding           string // "stage" or "boundary"
}

const (
	defaultJWTSecret        = "a-very-secret-key-should-be-longer-and-random"
	defaultBusinessTimezone = "Asia/Jerusalem"
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("BANK_RATE_URL", "https://boi.org.il/PublicApi/GetExchangeRate?key=USD")
	viper.SetDefault("BANK_RATE_TIMEOUT", "5s")
	viper.SetDefault("BANK_RATE_ENABLED", true)
	viper.SetDefault("BUSINESS_TIMEZONE", defaultBusinessTimezone)
	viper.SetDefault("CURRENCY_RATE_MARGIN_PERCENT", "0")
	viper.SetDefault("DEFAULT_PORT_OF_ORIGIN", "NINGBO")
	viper.SetDefault("DEFAULT_CONTAINER_SIZE_CBM", 68)
	viper.SetDefault("PRICING_ROUNDING", "stage")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:     viper.GetString("PGSQL_URL"),
		Port:            viper.GetString("PORT"),
		IsProduction:    viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:       viper.GetString("JWT_SECRET"),
		FrontendBaseURL: viper.GetString("FRONTEND_BASE_URL"),
		PosthogAPIKey:   viper.GetString("POSTHOG_API_KEY"),
		RateLimit:       viper.GetString("RATE_LIMIT"),
		BankRateURL:     viper.GetString("BANK_RATE_URL"),
		BankRateEnabled: viper.GetBool("BANK_RATE_ENABLED"),

		DefaultPortOfOrigin:     strings.ToUpper(strings.TrimSpace(viper.GetString("DEFAULT_PORT_OF_ORIGIN"))),
		DefaultContainerSizeCBM: viper.GetInt("DEFAULT_CONTAINER_SIZE_CBM"),
		PricingRounding:         strings.ToLower(viper.GetString("PRICING_ROUNDING")),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	bankTimeoutStr := viper.GetString("BANK_RATE_TIMEOUT")
	bankTimeout, err := time.ParseDuration(bankTimeoutStr)
	if err != nil || bankTimeout <= 0 {
		bankTimeout = 5 * time.Second
		log.Printf("Warning: Invalid value for BANK_RATE_TIMEOUT ('%s'). Defaulting to %s.\n", bankTimeoutStr, bankTimeout.String())
	}
	cfg.BankRateTimeout = bankTimeout

	tz := viper.GetString("BUSINESS_TIMEZONE")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("Warning: Unknown BUSINESS_TIMEZONE ('%s'). Falling back to UTC.\n", tz)
		loc = time.UTC
	}
	cfg.BusinessLocation = loc

	marginStr := viper.GetString("CURRENCY_RATE_MARGIN_PERCENT")
	margin, err := decimal.NewFromString(marginStr)
	if err != nil || margin.IsNegative() {
		log.Printf("Warning: Invalid value for CURRENCY_RATE_MARGIN_PERCENT ('%s'). Defaulting to 0.\n", marginStr)
		margin = decimal.Zero
	}
	cfg.CurrencyRateMarginPercent = margin

	switch cfg.DefaultContainerSizeCBM {
	case 33, 57, 68:
	default:
		log.Printf("Warning: Invalid value for DEFAULT_CONTAINER_SIZE_CBM (%d). Defaulting to 68.\n", cfg.DefaultContainerSizeCBM)
		cfg.DefaultContainerSizeCBM = 68
	}

	if cfg.PricingRounding != "stage" && cfg.PricingRounding != "boundary" {
		log.Printf("Warning: Invalid value for PRICING_ROUNDING ('%s'). Defaulting to stage.\n", cfg.PricingRounding)
		cfg.PricingRounding = "stage"
	}

	return cfg, nil
}
