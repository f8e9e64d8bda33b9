package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port string

	// Database configuration. DBDriver selects the backend: "mysql"
	// or "sqlite".
	DBDriver   string
	DBUser     string
	DBPassword string
	DBHost     string
	DBName     string
	SQLitePath string

	JWTSecret string
	LogLevel  string
	OpenAIKey string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:       getEnv("PORT", "8000"),
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     os.Getenv("DB_HOST"),
		DBName:     os.Getenv("DB_NAME"),
		SQLitePath: getEnv("SQLITE_PATH", "notevault.db"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		OpenAIKey:  os.Getenv("OPENAI_KEY"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.DBDriver == "mysql" && cfg.DBName == "" {
		return nil, fmt.Errorf("DB_NAME is required when DB_DRIVER=mysql")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
