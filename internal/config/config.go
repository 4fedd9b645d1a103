// Package config resolves runtime settings from the environment, with
// an optional .env file for development setups.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the resolved runtime settings.
type Config struct {
	// DBPath is the SQLite database file. Empty means use the XDG
	// default under the user's data directory.
	DBPath string

	// Username appears on generated certificates.
	Username string
}

// Load reads a .env file if one is present in the working directory,
// then resolves settings from the environment. A missing .env file is
// not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBPath:   getEnv("RNNCOURSE_DB", ""),
		Username: getEnv("RNNCOURSE_USER", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
