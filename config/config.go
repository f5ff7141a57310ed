package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DevSecretKey is only acceptable for local development.
const DevSecretKey = "dev-secret-change-me"

type Config struct {
	Port         string
	SecretKey    string
	DBDriver     string
	PostgresDSN  string
	SQLitePath   string
	SessionHours int
}

// Load reads configuration from a .env file (if present) and the
// environment, applying defaults suitable for a standalone local run.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		SecretKey:    getEnv("SECRET_KEY", ""),
		DBDriver:     getEnv("DB_DRIVER", "sqlite"),
		PostgresDSN:  getEnv("DB_DSN", ""),
		SQLitePath:   getEnv("SQLITE_PATH", "staffdesk.db"),
		SessionHours: getEnvInt("SESSION_HOURS", 24),
	}

	if cfg.SecretKey == "" {
		log.Println("SECRET_KEY is not set, falling back to the development key")
		cfg.SecretKey = DevSecretKey
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid value %q for %s, using %d", v, key, fallback)
		return fallback
	}
	return n
}
