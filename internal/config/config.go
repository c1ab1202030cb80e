// Package config loads the service configuration from the environment and an optional .env file.
package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Conf struct {
	AppPort       string `mapstructure:"APP_PORT"`
	AppEnv        string `mapstructure:"APP_ENV"`
	DBDriver      string `mapstructure:"DB_DRIVER"`
	DatabaseDSN   string `mapstructure:"DATABASE_DSN"`
	DBAutoMigrate bool   `mapstructure:"DB_AUTO_MIGRATE"`
	DBLogLevel    string `mapstructure:"DB_LOG_LEVEL"`
	RabbitMQURL   string `mapstructure:"RABBITMQ_URL"`
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	LogFile       string `mapstructure:"LOG_FILE"`
	LogFileLevel  string `mapstructure:"LOG_FILE_LEVEL"`
}

// IsProduction reports whether APP_ENV is "production".
func (c *Conf) IsProduction() bool {
	return c.AppEnv == "production"
}

var defaults = map[string]any{
	"APP_PORT":        ":8080",
	"APP_ENV":         "development",
	"DB_DRIVER":       "postgres",
	"DATABASE_DSN":    "host=127.0.0.1 user=postgres password=postgres dbname=catalogo port=5432 sslmode=disable",
	"DB_AUTO_MIGRATE": true,
	"DB_LOG_LEVEL":    "error",
	"RABBITMQ_URL":    "",
	"JWT_SECRET":      "",
	"LOG_FILE":        "/tmp/log_apiCatalogo.txt",
	"LOG_FILE_LEVEL":  "info",
}

// LoadConfig reads path/.env when present, then lets environment variables
// override it. Missing keys fall back to defaults.
func LoadConfig(path string) (*Conf, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Conf
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
