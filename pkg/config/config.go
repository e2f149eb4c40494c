package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config groups the application configuration, read from the environment via
// Viper. Call godotenv.Load before Load if a .env file should be honoured.
type Config struct {
	App AppConfig
	DB  DBConfig
	Log LogConfig
}

type AppConfig struct {
	Env  string // development, staging, production
	Name string
	Port string
}

type LogConfig struct {
	Level string
}

// DBConfig holds PostgreSQL settings. When DatabaseURL is set it wins over
// the discrete fields (e.g. a full DATABASE_URL from the hosting provider).
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	DBName      string
	SSLMode     string
	TimeZone    string
}

// DSN returns the connection string to hand to the driver.
func (c DBConfig) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.Host, c.User, c.Password, c.DBName, c.Port, c.SSLMode, c.TimeZone,
	)
}

func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "InventoryTrack backend")
	v.SetDefault("PORT", "4000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "inventorytrack")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")

	return &Config{
		App: AppConfig{
			Env:  v.GetString("APP_ENV"),
			Name: v.GetString("APP_NAME"),
			Port: v.GetString("PORT"),
		},
		DB: DBConfig{
			DatabaseURL: v.GetString("DATABASE_URL"),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			TimeZone:    v.GetString("DB_TIMEZONE"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}
}
