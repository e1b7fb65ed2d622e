package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	DBUrl string
	// Redis configuration for the interaction-signal sink
	RedisURL      string
	RedisPassword string
	// Engine tunables. The defaults are the documented behavior; overrides
	// exist for experimentation, not per-request tweaking.
	MinMatchScore      float64 // admission threshold for output
	DiversityHighScore float64 // gate for the one-per-company pass
	DiversityCap       int     // size of the one-per-company pass
	ResultCap          int     // diversified pool size before limit truncation
	DefaultLimit       int     // result count when the caller sends none
}

func LoadConfig() (*Config, error) {
	// .env is only present in local development; ignored elsewhere.
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DBUrl:         getEnv("DATABASE_URL", ""),
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		MinMatchScore:      getEnvFloat("MIN_MATCH_SCORE", 0.3),
		DiversityHighScore: getEnvFloat("DIVERSITY_HIGH_SCORE", 0.7),
		DiversityCap:       getEnvInt("DIVERSITY_CAP", 10),
		ResultCap:          getEnvInt("RESULT_CAP", 20),
		DefaultLimit:       getEnvInt("DEFAULT_LIMIT", 20),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Interaction signals will be log-only.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvFloat returns a float environment variable or fallback if not set/invalid
func getEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return fallback
}
