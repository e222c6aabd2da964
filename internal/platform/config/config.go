package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort   string
	JWTKey    []byte
	JWTExp    time.Duration
	UsersFile string
}

// Load reads .env if present, then falls back to environment variables and
// defaults. The JWT_SECRET default is insecure and must be overridden in
// production.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	return &Config{
		APIPort:   getEnv("API_PORT", "8080"),
		JWTKey:    []byte(getEnv("JWT_SECRET", "your-very-secure-jwt-signing-secret")),
		JWTExp:    time.Duration(getEnvAsInt("JWT_EXPIRATION_HOURS", 1)) * time.Hour,
		UsersFile: getEnv("USERS_FILE", "users.json"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
