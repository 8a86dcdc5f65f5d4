package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Addr   string // AGENDA_ADDR, default ":8080"
	DBPath string // AGENDA_DB, default "agenda.db"
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first if present; real
// environment variables take precedence over it.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:   envOr("AGENDA_ADDR", ":8080"),
		DBPath: envOr("AGENDA_DB", "agenda.db"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
