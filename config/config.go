package config

import (
	"fmt"
	"log"
	"net"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment    string   `env:"GO_ENV" envDefault:"development"`
	Host           string   `env:"HOST" envDefault:"localhost"`
	Port           string   `env:"PORT" envDefault:"8000"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	OpenBrowser    bool     `env:"OPEN_BROWSER" envDefault:"false"`
	// PublicURL is linked from invitation emails. Defaults to the landing page.
	PublicURL string `env:"PUBLIC_URL"`

	Email EmailConfig
}

// EmailConfig selects and configures the mailer used for invitation emails.
type EmailConfig struct {
	Provider              string `env:"EMAIL_PROVIDER" envDefault:"noop"`
	FromAddress           string `env:"EMAIL_FROM_ADDRESS"`
	FromName              string `env:"EMAIL_FROM_NAME" envDefault:"Invitation Service"`
	AWSRegion             string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID        string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey    string `env:"AWS_SECRET_ACCESS_KEY"`
	SESInsecureSkipVerify bool   `env:"SES_INSECURE_SKIP_VERIFY"`
}

// Addr is the host:port the server listens on.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	// In production .env might not exist and we rely on system environment variables.
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	return Parse()
}

// Parse builds a Config from the current environment without touching .env files.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.PublicURL == "" {
		cfg.PublicURL = "http://" + cfg.Addr() + "/"
	}
	return cfg, nil
}
