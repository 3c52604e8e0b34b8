// Package config loads runtime configuration from the environment.
package config

import "github.com/spf13/viper"

// Config holds the environment-driven settings of the service.
type Config struct {
	// Port is the HTTP listen port.
	Port string
	// DatabaseURL is the MongoDB connection string. Empty disables the store.
	DatabaseURL string
	// DatabaseName is the database holding the product collection.
	DatabaseName string
	// RabbitMQURL enables event publishing when set.
	RabbitMQURL string
}

// Load reads configuration from environment variables, applying defaults.
func Load() Config {
	v := viper.New()
	v.SetDefault("PORT", "8000")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DATABASE_NAME", "")
	v.SetDefault("RABBITMQ_URL", "")
	v.AutomaticEnv()

	return Config{
		Port:         v.GetString("PORT"),
		DatabaseURL:  v.GetString("DATABASE_URL"),
		DatabaseName: v.GetString("DATABASE_NAME"),
		RabbitMQURL:  v.GetString("RABBITMQ_URL"),
	}
}

// DatabaseURLSet reports whether DATABASE_URL was configured. The diagnostic
// endpoint reports presence only, never the value.
func (c Config) DatabaseURLSet() bool {
	return c.DatabaseURL != ""
}

// DatabaseNameSet reports whether DATABASE_NAME was configured.
func (c Config) DatabaseNameSet() bool {
	return c.DatabaseName != ""
}
