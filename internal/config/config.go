// Package config loads and validates workout tracker configuration from
// environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve on hosts without a zoneinfo database
)

// Config holds all configuration values for the tracker.
// Values are populated by Load from environment variables.
type Config struct {
	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// LogFormat selects the slog handler: "json" (default) or "text".
	LogFormat string

	// LogFile, when set, sends logs to a rotated file instead of stdout.
	LogFile string

	// LogToStdout also writes to stdout when LogFile is set.
	LogToStdout bool

	// Location is the time zone that decides which calendar day "today" is.
	// Set TIMEZONE to an IANA name; defaults to UTC.
	Location *time.Location

	// WorkoutTypesFile points to a TOML catalog replacing the built-in
	// default workout types. Empty means the embedded defaults.
	WorkoutTypesFile string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing every variable holding an invalid value.
func Load() (Config, error) {
	cfg := Config{
		LogLevel:         strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:        strings.ToLower(getEnv("LOG_FORMAT", "json")),
		LogFile:          os.Getenv("LOG_FILE"),
		WorkoutTypesFile: os.Getenv("WORKOUT_TYPES_FILE"),
	}

	var invalid []string

	switch cfg.LogFormat {
	case "json", "text":
	default:
		invalid = append(invalid, "LOG_FORMAT")
	}

	toStdout, err := strconv.ParseBool(getEnv("LOG_TO_STDOUT", "false"))
	if err != nil {
		invalid = append(invalid, "LOG_TO_STDOUT")
	}
	cfg.LogToStdout = toStdout

	loc, err := time.LoadLocation(getEnv("TIMEZONE", "UTC"))
	if err != nil {
		invalid = append(invalid, "TIMEZONE")
	}
	cfg.Location = loc

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
