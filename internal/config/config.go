package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/arsens-deals/storefront/internal/domain"
)

// Config is the process-wide configuration. It is read once at startup and
// never mutated afterwards.
type Config struct {
	Port string

	PayPalEnv          string
	PayPalClientID     string
	PayPalClientSecret string
	PayPalWebhookID    string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string
	AdminPhone       string

	AdminPassword string

	// Markup is the flat per-line margin in cents.
	Markup int64

	PostgresURL  string
	KafkaBrokers []string
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("PAYPAL_ENV", "sandbox")
	v.SetDefault("MARKUP", "0.50")

	markup, err := domain.ParseAmount(v.GetString("MARKUP"))
	if err != nil {
		return nil, fmt.Errorf("invalid MARKUP: %w", err)
	}
	if markup < 0 {
		return nil, fmt.Errorf("MARKUP must not be negative")
	}

	cfg := &Config{
		Port:               v.GetString("PORT"),
		PayPalEnv:          v.GetString("PAYPAL_ENV"),
		PayPalClientID:     v.GetString("PAYPAL_CLIENT_ID"),
		PayPalClientSecret: v.GetString("PAYPAL_CLIENT_SECRET"),
		PayPalWebhookID:    v.GetString("PAYPAL_WEBHOOK_ID"),
		TwilioAccountSID:   v.GetString("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:    v.GetString("TWILIO_AUTH_TOKEN"),
		TwilioFrom:         v.GetString("TWILIO_FROM"),
		AdminPhone:         v.GetString("ADMIN_PHONE"),
		AdminPassword:      v.GetString("ADMIN_PASSWORD"),
		Markup:             markup,
		PostgresURL:        v.GetString("POSTGRES_URL"),
	}

	if brokers := v.GetString("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	if cfg.PayPalClientID == "" || cfg.PayPalClientSecret == "" {
		return nil, fmt.Errorf("PAYPAL_CLIENT_ID and PAYPAL_CLIENT_SECRET are required")
	}
	if cfg.PayPalWebhookID == "" {
		return nil, fmt.Errorf("PAYPAL_WEBHOOK_ID is required")
	}
	if cfg.PayPalEnv != "sandbox" && cfg.PayPalEnv != "live" {
		return nil, fmt.Errorf("PAYPAL_ENV must be sandbox or live, got %q", cfg.PayPalEnv)
	}

	return cfg, nil
}
