package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings, including the paging and sorting
// defaults applied when a request leaves them out.
type Config struct {
	Port         string
	DatabasePath string
	Env          string

	DefaultPage      int
	DefaultPageSize  int
	MaxPageSize      int
	DefaultSortField string
	DefaultSortDir   string
}

// Load reads configuration from the environment. A .env file is loaded first
// if one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:             getEnv("PORT", "8080"),
		DatabasePath:     getEnv("DATABASE_PATH", "investment.db"),
		Env:              getEnv("ENV", "development"),
		DefaultPage:      0,
		DefaultPageSize:  getEnvInt("DEFAULT_PAGE_SIZE", 20),
		MaxPageSize:      getEnvInt("MAX_PAGE_SIZE", 100),
		DefaultSortField: "recommendation_date",
		DefaultSortDir:   "desc",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
