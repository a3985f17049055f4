package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreSQLite   = "sqlite"
)

// Config is the process configuration, read once from the environment
// (and from .env through godotenv/autoload in main).
type Config struct {
	Port    int    `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	Store              string `env:"DIGITIZATION_STORE" envDefault:"sqlite"`
	SQLitePath         string `env:"SQLITE_PATH" envDefault:"digitizations.db"`
	DigitizationsTable string `env:"DIGITIZATIONS_TABLE" envDefault:"digitizations"`
	DynamoDB           DynamoDB

	PartnerTimeout   time.Duration `env:"PARTNER_HTTP_TIMEOUT" envDefault:"30s"`
	PollMaxAttempts  int           `env:"FORMALIZATION_MAX_ATTEMPTS" envDefault:"15"`
	PollInterval     time.Duration `env:"FORMALIZATION_INTERVAL" envDefault:"20s"`
	PartnerSandbox   bool          `env:"PARTNER_SANDBOX" envDefault:"false"`
	Banrisul         Partner       `envPrefix:"BANRISUL_"`
	C6               Partner       `envPrefix:"C6_"`
	Safra            Partner       `envPrefix:"SAFRA_"`
	MulticorbanURL   string        `env:"MULTICORBAN_BASE_URL"`
	MulticorbanToken string        `env:"MULTICORBAN_TOKEN"`
}

// DynamoDB keeps the local-friendly defaults of DynamoDB Local.
type DynamoDB struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`
}

type Partner struct {
	BaseURL string `env:"BASE_URL"`
	APIKey  string `env:"API_KEY"`
}

func (p Partner) Enabled() bool { return p.BaseURL != "" }

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Store {
	case StoreDynamoDB, StoreSQLite:
	default:
		return fmt.Errorf("DIGITIZATION_STORE must be %q or %q, got %q", StoreDynamoDB, StoreSQLite, c.Store)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.PartnerTimeout <= 0 {
		return fmt.Errorf("PARTNER_HTTP_TIMEOUT must be positive")
	}
	if c.PollMaxAttempts <= 0 || c.PollInterval <= 0 {
		return fmt.Errorf("FORMALIZATION_MAX_ATTEMPTS and FORMALIZATION_INTERVAL must be positive")
	}
	return nil
}
