package config

import (
	"os"
	"strconv"
)

// Config holds runtime settings read from the environment.
type Config struct {
	Server ServerConfig
	Tax    TaxConfig
}

type ServerConfig struct {
	Port        string
	DatabaseURL string
	TerminalID  string
}

type TaxConfig struct {
	// BaseRate is the full sales-tax rate before any customer-tier
	// exemption is applied, e.g. 0.0875 for 8.75%.
	BaseRate float64
}

// Load reads configuration from the environment with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        getEnv("APP_PORT", "8080"),
			DatabaseURL: getEnv("DATABASE_URL", ""),
			TerminalID:  getEnv("POS_TERMINAL_ID", "register-1"),
		},
		Tax: TaxConfig{
			BaseRate: getEnvFloat("POS_TAX_RATE", 0.0875),
		},
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
