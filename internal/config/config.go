package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBUrl      string
	ServerPort string

	JWTSecret string
	TokenTTL  time.Duration

	RedisAddr string

	// Limite de tentativas de login por IP
	LoginRateLimit  int
	LoginRatePeriod time.Duration

	SeedAdminEmail    string
	SeedAdminPassword string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBUrl:      mustGetEnv("DATABASE_URL"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		JWTSecret: mustGetEnv("JWT_SECRET"),
		TokenTTL:  getDurationEnv("TOKEN_TTL_HOURS", 8) * time.Hour,

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),

		LoginRateLimit:  getIntEnv("LOGIN_RATE_LIMIT", 10),
		LoginRatePeriod: getDurationEnv("LOGIN_RATE_PERIOD_MIN", 5) * time.Minute,

		SeedAdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@clinica.local"),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustGetEnv(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	log.Fatalf("required environment variable %s is not set", key)
	return ""
}

func getIntEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid value for %s (%q), using default %d", key, v, def)
		return def
	}
	return n
}

func getDurationEnv(key string, def int) time.Duration {
	return time.Duration(getIntEnv(key, def))
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
