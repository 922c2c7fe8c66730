package config

import (
	"encoding/json"
	"os"

	"github.com/akarpov87/gotodo/internal/flagx"
	"github.com/akarpov87/gotodo/internal/timex"
)

// jsonConfig is the intermediate DTO for reading a JSON configuration file.
// timex.Duration allows TokenTTL to be written as "15m" or as nanoseconds.
type jsonConfig struct {
	Address     string         `json:"address"`
	DatabaseDSN string         `json:"database_dsn"`
	SecretKey   string         `json:"secret_key"`
	TokenTTL    timex.Duration `json:"token_ttl"`
}

// parseJSON overlays values from the JSON file named by the -c/-config
// flags, if any. Fields absent from the file keep their current values.
// An unreadable or invalid file panics.
func parseJSON(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &jsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Address != "" {
		config.Address = c.Address
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenTTL.Duration != 0 {
		config.TokenTTL = c.TokenTTL.Duration
	}
}
