package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath string
	Debug  bool
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

// Load reads configuration from the environment, with an optional .env file.
// The database defaults to ~/FitTrack/fittrack.db.
func Load() Config {
	_ = godotenv.Load()

	defaultPath := "fittrack.db"
	if home, err := os.UserHomeDir(); err == nil {
		defaultPath = filepath.Join(home, "FitTrack", "fittrack.db")
	}

	return Config{
		DBPath: getenv("FITTRACK_DB_PATH", defaultPath),
		Debug:  os.Getenv("FITTRACK_DEBUG") != "",
	}
}
