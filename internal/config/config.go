// Package config loads the storefront settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Addr string `env:"SHOP_ADDR" envDefault:":8080"`
	Env  string `env:"ENV" envDefault:"development"`

	SessionTTL           time.Duration `env:"SHOP_SESSION_TTL" envDefault:"168h"`
	SessionCookie        string        `env:"SHOP_SESSION_COOKIE" envDefault:"saree_session"`
	CookieSecure         bool          `env:"SHOP_COOKIE_SECURE" envDefault:"false"`
	SessionSweepInterval time.Duration `env:"SHOP_SESSION_SWEEP_INTERVAL" envDefault:"1h"`
	BcryptCost           int           `env:"SHOP_BCRYPT_COST" envDefault:"10"`

	FreeShippingThreshold float64 `env:"SHOP_FREE_SHIPPING_THRESHOLD" envDefault:"2999"`
	ShippingFee           float64 `env:"SHOP_SHIPPING_FEE" envDefault:"199"`

	CORSOrigins []string `env:"SHOP_CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	KafkaBrokers []string `env:"SHOP_KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"SHOP_KAFKA_TOPIC" envDefault:"orders.placed"`
}

// Load reads an optional .env file from the working directory, then the
// process environment. Variables already set win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse reads the configuration from the process environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.SessionTTL <= 0:
		return fmt.Errorf("SHOP_SESSION_TTL must be positive, got %s", c.SessionTTL)
	case c.SessionSweepInterval <= 0:
		return fmt.Errorf("SHOP_SESSION_SWEEP_INTERVAL must be positive, got %s", c.SessionSweepInterval)
	case c.SessionCookie == "":
		return errors.New("SHOP_SESSION_COOKIE must not be empty")
	case c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost:
		return fmt.Errorf("SHOP_BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	case c.FreeShippingThreshold < 0:
		return fmt.Errorf("SHOP_FREE_SHIPPING_THRESHOLD must not be negative, got %v", c.FreeShippingThreshold)
	case c.ShippingFee < 0:
		return fmt.Errorf("SHOP_SHIPPING_FEE must not be negative, got %v", c.ShippingFee)
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) EventsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}
