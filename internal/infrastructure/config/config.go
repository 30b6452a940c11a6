package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Port     string `mapstructure:"PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	StoreDriver string `mapstructure:"STORE_DRIVER"`

	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`
	ClaimsTable        string `mapstructure:"CLAIMS_TABLE"`
	SettlementsTable   string `mapstructure:"SETTLEMENTS_TABLE"`
	PaymentsTable      string `mapstructure:"PAYMENTS_TABLE"`
	BeneficiariesTable string `mapstructure:"BENEFICIARIES_TABLE"`
	ProvidersTable     string `mapstructure:"PROVIDERS_TABLE"`
	PriceCatalogTable  string `mapstructure:"PRICE_CATALOG_TABLE"`

	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DBMaxConns  int32  `mapstructure:"DB_MAX_CONNS"`
	DBMinConns  int32  `mapstructure:"DB_MIN_CONNS"`

	RabbitMQURL string `mapstructure:"RABBITMQ_URL"`
	EventsQueue string `mapstructure:"EVENTS_QUEUE"`

	MercadoPagoAccessToken string `mapstructure:"MERCADOPAGO_ACCESS_TOKEN"`
	MercadoPagoPayerEmail  string `mapstructure:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	MercadoPagoPayerUserID string `mapstructure:"MERCADOPAGO_TEST_PAYER_USER_ID"`
	PaymentGatewayMock     string `mapstructure:"PAYMENT_GATEWAY_MOCK"`
	CurrencyExponent       int32  `mapstructure:"CURRENCY_EXPONENT"`

	ExtraPrestationTypes string `mapstructure:"EXTRA_PRESTATION_TYPES"`
}

var envKeys = []string{
	"PORT", "ENV", "LOG_LEVEL", "STORE_DRIVER",
	"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "DYNAMODB_ENDPOINT",
	"CLAIMS_TABLE", "SETTLEMENTS_TABLE", "PAYMENTS_TABLE", "BENEFICIARIES_TABLE", "PROVIDERS_TABLE", "PRICE_CATALOG_TABLE",
	"DATABASE_URL", "DB_MAX_CONNS", "DB_MIN_CONNS",
	"RABBITMQ_URL", "EVENTS_QUEUE",
	"MERCADOPAGO_ACCESS_TOKEN", "MERCADOPAGO_TEST_PAYER_EMAIL", "MERCADOPAGO_TEST_PAYER_USER_ID",
	"PAYMENT_GATEWAY_MOCK", "CURRENCY_EXPONENT",
	"EXTRA_PRESTATION_TYPES",
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", StoreDynamoDB)
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("CLAIMS_TABLE", "claims")
	v.SetDefault("SETTLEMENTS_TABLE", "settlements")
	v.SetDefault("PAYMENTS_TABLE", "remainder_payments")
	v.SetDefault("BENEFICIARIES_TABLE", "beneficiaries")
	v.SetDefault("PROVIDERS_TABLE", "providers")
	v.SetDefault("PRICE_CATALOG_TABLE", "price_catalog")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("EVENTS_QUEUE", "claims.events")
	v.SetDefault("CURRENCY_EXPONENT", 2)

	for _, k := range envKeys {
		_ = v.BindEnv(k)
	}

	// .env is optional
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	switch cfg.StoreDriver {
	case StoreDynamoDB, StoreMemory:
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when STORE_DRIVER=postgres")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	if cfg.CurrencyExponent < 0 || cfg.CurrencyExponent > 4 {
		return nil, fmt.Errorf("CURRENCY_EXPONENT must be between 0 and 4, got %d", cfg.CurrencyExponent)
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// PaymentGatewayMockEnabled accepts the usual truthy spellings.
func (c *Config) PaymentGatewayMockEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(c.PaymentGatewayMock)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

// PrestationTypes splits EXTRA_PRESTATION_TYPES on commas.
func (c *Config) PrestationTypes() []string {
	var out []string
	for _, p := range strings.Split(c.ExtraPrestationTypes, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
