package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DatabaseFileName is the fixed name of the embedded database file inside the
// application-data directory.
const DatabaseFileName = "sqlite.db"

// Config holds the persistence-core configuration. The application-data
// directory is normally supplied by the host shell; UPCOUNT_DATA_DIR overrides
// it for headless runs and tests.
type Config struct {
	AppName  string
	DataDir  string
	LogLevel string
}

// Load loads configuration from environment variables and an optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	dataDir := getenv("UPCOUNT_DATA_DIR", "")
	if dataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return Config{}, err
		}
		dataDir = filepath.Join(base, "upcount")
	}

	return Config{
		AppName:  getenv("APP_SERVICE", "upcount"),
		DataDir:  dataDir,
		LogLevel: getenv("UPCOUNT_LOG_LEVEL", "info"),
	}, nil
}

// DatabasePath returns the path of the live database file.
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, DatabaseFileName)
}

// DatabaseURL returns the sqlite:// URL the storage adapter opens.
func (c Config) DatabaseURL() string {
	return "sqlite://" + c.DatabasePath()
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
