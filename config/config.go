package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Env              string
	Port             string
	RecordAPIURL     string
	RecordTimeoutSec int
	ProfileDir       string
	PageSize         int
}

func Load() *Config {
	return &Config{
		Env:              getEnv("ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		RecordAPIURL:     getEnv("RECORD_API_URL", "http://localhost:1337"),
		RecordTimeoutSec: getEnvAsInt("RECORD_API_TIMEOUT", 10),
		ProfileDir:       getEnv("PROFILE_DIR", ".data"),
		PageSize:         getEnvAsInt("PAGE_SIZE", 10),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
