// Package config reads application settings from the environment or a .env
// file via Viper.
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config stores all configuration for the application.
type Config struct {
	HTTPPort              string `mapstructure:"HTTP_PORT"`
	JWTSecret             string `mapstructure:"JWT_SECRET"`
	UsersTableName        string `mapstructure:"DYNAMODB_USERS_TABLE_NAME"`
	TransactionsTableName string `mapstructure:"DYNAMODB_TRANSACTIONS_TABLE_NAME"`
	EventsQueueURL        string `mapstructure:"SQS_EVENTS_QUEUE_URL"`
}

// LoadConfig reads configuration from a .env file or environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.SetDefault("HTTP_PORT", "8080")

	// Bind envs explicitly so containers pick them up reliably.
	_ = viper.BindEnv("HTTP_PORT")
	_ = viper.BindEnv("JWT_SECRET")
	_ = viper.BindEnv("DYNAMODB_USERS_TABLE_NAME")
	_ = viper.BindEnv("DYNAMODB_TRANSACTIONS_TABLE_NAME")
	_ = viper.BindEnv("SQS_EVENTS_QUEUE_URL")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Warning: Error reading config file: %s", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
