// Package config contains everything related to configuration
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/m-renshaw/pourwatch-tui/internal/models"
)

// Config holds the application configuration.
type Config struct {
	DatabasePath     string
	RefreshInterval  time.Duration
	WeekStart        time.Weekday
	BACAlertGPerL    float64
	ResultLimit      int
	DefaultPeriod    models.PeriodType
	ProfileWeightKg  float64
	ProfileGender    models.Gender
}

// Default values
const (
	defaultRefreshInterval = time.Minute
	defaultBACAlert        = 0.5 // g/L, a common legal driving limit
	defaultResultLimit     = 10
)

// Load reads configuration from .env files and environment variables. Nothing
// is required: every field has a usable default and a malformed value falls
// back silently.
func Load() (*Config, error) {
	for _, path := range envPaths() {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	cfg := &Config{
		DatabasePath:    getEnvString("POURWATCH_DB_PATH", defaultDatabasePath()),
		RefreshInterval: getEnvDuration("POURWATCH_REFRESH_INTERVAL", defaultRefreshInterval),
		WeekStart:       getEnvWeekday("POURWATCH_WEEK_START", time.Monday),
		BACAlertGPerL:   getEnvFloat("POURWATCH_BAC_ALERT", defaultBACAlert),
		ResultLimit:     getEnvInt("POURWATCH_RESULT_LIMIT", defaultResultLimit),
		DefaultPeriod:   getEnvPeriod("POURWATCH_PERIOD", models.PeriodWeek),
		ProfileWeightKg: getEnvFloat("PROFILE_WEIGHT_KG", 0),
		ProfileGender:   models.Gender(strings.ToLower(os.Getenv("PROFILE_GENDER"))),
	}

	if err := ensureDir(filepath.Dir(cfg.DatabasePath)); err != nil {
		return nil, err
	}

	return cfg, nil
}

// EnvProfile returns the profile configured through the environment; an
// incomplete one is fine, the analytics degrade gracefully.
func (c *Config) EnvProfile() models.UserProfile {
	return models.UserProfile{WeightKg: c.ProfileWeightKg, Gender: c.ProfileGender}
}

// envPaths returns the locations checked for .env files.
func envPaths() []string {
	var paths []string

	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "pourwatch", ".env"),
			filepath.Join(home, ".pourwatch", ".env"),
		)
	}
	return paths
}

// defaultDatabasePath returns the default path for the SQLite database.
func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pourwatch.db"
	}
	return filepath.Join(home, ".config", "pourwatch", "pourwatch.db")
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration accepts values like "30s", "1m" or a bare second count.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvWeekday(key string, defaultValue time.Weekday) time.Weekday {
	value := strings.ToLower(os.Getenv(key))
	days := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}
	if d, ok := days[value]; ok {
		return d
	}
	return defaultValue
}

func getEnvPeriod(key string, defaultValue models.PeriodType) models.PeriodType {
	switch p := models.PeriodType(strings.ToLower(os.Getenv(key))); p {
	case models.PeriodDay, models.PeriodWeek, models.PeriodMonth, models.PeriodYear:
		return p
	default:
		return defaultValue
	}
}

// ensureDir creates a directory and all parent directories if they don't exist.
func ensureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0o750)
}
