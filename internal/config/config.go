package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config represents the demo application configuration structure
type Config struct {
	Environment   string        `default:"dev"`
	BucketCount   int           `split_words:"true" default:"8"`
	ValueLifetime time.Duration `split_words:"true" default:"1m"`
}

// IsEnvProduction returns whether the application runs in production mode
func (config *Config) IsEnvProduction() bool {
	return config.Environment == "prod" || config.Environment == "production"
}

// LoadFromEnv loads a new configuration structure using environment variables and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Overload()

	// Load a new configuration structure using environment variables
	config := new(Config)
	if err := envconfig.Process("ct", config); err != nil {
		return nil, err
	}
	return config, nil
}
