package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// Front-end assets
	TailwindCSSURL = "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"
	HTMXURL        = "https://unpkg.com/htmx.org@2.0.4"

	// Picker defaults
	PickerDefaultLabel = "Select Game"
	PickerFeaturedMax  = 4

	// Hero carousel rotation interval
	CarouselInterval = 5 * time.Second
)

var (
	ServerPort         = "8080"
	ServerRateLimitMax = 120
	ServerRateLimitExp = 1 * time.Minute
	ServerReadTimeout  = 30 * time.Second
	ServerWriteTimeout = 30 * time.Second

	DatabaseURL = "catalog.db"

	RedisAddress  = "localhost:6379"
	RedisPassword = ""

	// CollectionsBaseURL is where pickers fetch /api/collections from.
	// Empty means this server.
	CollectionsBaseURL = ""
	CollectionsTimeout = 10 * time.Second
	CatalogCacheTTL    = 5 * time.Minute

	PickerIdleTTL      = 30 * time.Minute
	PickerSweepEvery   = 1 * time.Minute
	PickerPollInterval = "1s"

	AdminUser         = "admin"
	AdminPasswordHash = ""
)

// Load reads a .env file if present and overrides the defaults from the environment.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[config] .env file not found, using environment and defaults")
	}

	ServerPort = getEnv("PORT", ServerPort)
	ServerRateLimitMax = getEnvInt("RATE_LIMIT_MAX", ServerRateLimitMax)
	ServerRateLimitExp = getEnvDuration("RATE_LIMIT_EXPIRATION", ServerRateLimitExp)

	DatabaseURL = getEnv("DATABASE_URL", DatabaseURL)
	RedisAddress = getEnv("REDIS_ADDRESS", RedisAddress)
	RedisPassword = getEnv("REDIS_PASSWORD", RedisPassword)

	CollectionsBaseURL = getEnv("COLLECTIONS_BASE_URL", CollectionsBaseURL)
	CollectionsTimeout = getEnvDuration("COLLECTIONS_TIMEOUT", CollectionsTimeout)
	CatalogCacheTTL = getEnvDuration("CATALOG_CACHE_TTL", CatalogCacheTTL)

	PickerIdleTTL = getEnvDuration("PICKER_IDLE_TTL", PickerIdleTTL)
	PickerSweepEvery = getEnvDuration("PICKER_SWEEP_EVERY", PickerSweepEvery)

	AdminUser = getEnv("ADMIN_USER", AdminUser)
	AdminPasswordHash = getEnv("ADMIN_PASSWORD_HASH", AdminPasswordHash)

	if CollectionsBaseURL == "" {
		CollectionsBaseURL = "http://localhost:" + ServerPort
	}
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
		log.Printf("[config] invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
