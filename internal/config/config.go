package config

import (
	"os"
)

// Config holds the application configuration
type Config struct {
	Port    string
	DataDir string // directory containing participants.csv, durations.csv, tracking.csv
	DBPath  string // ":memory:" keeps the joined tables in-process
	GinMode string
}

// Load reads the configuration from the environment
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = ":memory:"
	}

	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "" {
		ginMode = "release"
	}

	return &Config{
		Port:    port,
		DataDir: dataDir,
		DBPath:  dbPath,
		GinMode: ginMode,
	}
}
