// utils/config.go
package utils

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	DatabaseURL      string
	Port             string
	AllowedOrigins   string
	StoreTimeout     time.Duration
	SnapshotInterval time.Duration // zero disables snapshots
	SnapshotLabel    string
	SnapshotDir      string
}

// LoadConfig reads the service settings from the environment.
func LoadConfig() (Config, error) {
	cfg := Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Port:          getEnv("PORT", "5000"),
		SnapshotLabel: getEnv("SNAPSHOT_LABEL", "Tic-Tac-Toe"),
		SnapshotDir:   getEnv("SNAPSHOT_DIR", "snapshots"),
	}
	if cfg.DatabaseURL == "" {
		return cfg, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	origins := strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	cfg.AllowedOrigins = strings.Join(origins, ",")

	var err error
	if cfg.StoreTimeout, err = durationEnv("STORE_TIMEOUT", 5*time.Second); err != nil {
		return cfg, err
	}
	if cfg.StoreTimeout <= 0 {
		return cfg, fmt.Errorf("STORE_TIMEOUT must be greater than zero")
	}
	if cfg.SnapshotInterval, err = durationEnv("SNAPSHOT_INTERVAL", time.Hour); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// getEnv returns the value of key, or fallback when it is unset or blank.
func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	if raw == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return d, nil
}
