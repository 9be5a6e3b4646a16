package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`
	// Resend Configuration
	ResendAPIKey  string        `env:"RESEND_API_KEY"`
	ResendBaseURL string        `env:"RESEND_BASE_URL" envDefault:"https://api.resend.com"`
	EmailTimeout  time.Duration `env:"EMAIL_TIMEOUT" envDefault:"10s"`
	// Contact form addresses
	CompanyEmail string `env:"COMPANY_EMAIL" envDefault:"hello@inboxops.app"`
	FromEmail    string `env:"FROM_EMAIL" envDefault:"noreply@inboxops.app"`
	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`
}

func LoadConfig() (*Config, error) {
	// Only effective locally; a missing .env is not an error
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Strip trailing slash so "/emails" joins cleanly
	cfg.ResendBaseURL = strings.TrimRight(cfg.ResendBaseURL, "/")

	// Empty values count as unset for the addresses
	if strings.TrimSpace(cfg.CompanyEmail) == "" {
		cfg.CompanyEmail = "hello@inboxops.app"
	}
	if strings.TrimSpace(cfg.FromEmail) == "" {
		cfg.FromEmail = "noreply@inboxops.app"
	}

	return cfg, nil
}
