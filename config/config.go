package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	Port      string
	Env       string
	DBPath    string
	LogLevel  string
	Timezone  string
	Locale    string
	CORSAllow string
	RateLimit int
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:      GetEnv("PORT", "3000"),
		Env:       GetEnv("ENV", "development"),
		DBPath:    GetEnv("DB_PATH", "./data/activities.db"),
		LogLevel:  GetEnv("LOG_LEVEL", "info"),
		Timezone:  GetEnv("TIMEZONE", "Europe/Helsinki"),
		Locale:    GetEnv("COLLATION_LOCALE", "fi"),
		CORSAllow: GetEnv("CORS_ORIGINS", "*"),
		RateLimit: getEnvInt("RATE_LIMIT", 0),
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("invalid integer setting", "key", key, "value", value)
		return defaultValue
	}
	return n
}

// Location returns the configured timezone, UTC if it cannot be loaded
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		slog.Warn("unknown timezone, using UTC", "timezone", c.Timezone, "error", err)
		return time.UTC
	}
	return loc
}

// Language returns the collation locale, language.Und if it does not parse
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		slog.Warn("unknown collation locale", "locale", c.Locale, "error", err)
		return language.Und
	}
	return tag
}
