package config

import (
	"os"
	"time"
)

// parseEnv overlays values from the environment. Unset variables keep the
// current values.
//
// Recognized variables:
//
//	ADDRESS       HTTP bind address (e.g. ":8080")
//	DATABASE_DSN  PostgreSQL DSN
//	SECRET_KEY    JWT HMAC secret
//	TOKEN_TTL     token lifetime as a Go duration string (e.g. "15m")
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.Address = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenTTL = d
		}
	}
}
