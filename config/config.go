package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// RedisConfig is the minimal bootstrap config for the shared Redis client.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoadConfig reads the Redis settings from the environment (.env honored).
func LoadConfig() RedisConfig {
	_ = godotenv.Load()

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid REDIS_DB value %q, using 0", v)
		} else {
			redisDB = parsed
		}
	}

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	return RedisConfig{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       redisDB,
	}
}
