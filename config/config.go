package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// Config holds application configuration loaded from the environment.
// This is a simple way to make config accessible globally.
type Config struct {
	DatabaseURL     string `envconfig:"DATABASE_URL" required:"true"`
	JWTSecret       string `envconfig:"JWT_SECRET" required:"true"`
	GeminiAPIKey    string `envconfig:"GEMINI_API_KEY"`
	InitToken       string `envconfig:"INIT_TOKEN"`
	Port            string `envconfig:"PORT" default:"3000"`
	AIMonthlyBudget string `envconfig:"AI_MONTHLY_BUDGET" default:"25.00"`
}

// AppConfig holds the application-wide configuration.
var AppConfig Config

// Load reads the configuration from environment variables.
func Load() error {
	return envconfig.Process("", &AppConfig)
}

// AIBudget returns the monthly AI spend cap as a decimal.
// An unparseable value disables the assistant rather than failing startup.
func AIBudget() decimal.Decimal {
	d, err := decimal.NewFromString(AppConfig.AIMonthlyBudget)
	if err != nil {
		return decimal.Zero
	}
	return d
}
