package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// config holds application, database, Redis, throttling, Kafka, gRPC, logging and JWT settings.
type config struct {
	AppHost     string
	AppPort     string
	LogLevel    string
	LogEncoding string

	GRPCHealthPort string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	ThrottleStore        string // "redis" or "memory"
	ThrottleLimit        int
	ThrottleWindowSecond int
	ThrottleHeader       string

	KafkaBrokers []string // empty disables login events
	KafkaTopic   string

	JWTSecretKey string
	JWTExpSecond int
	JWTIssuer    string

	AdminUsername string // seeded on startup
	AdminPassword string
}

// parseConfig loads environment variables from a file and returns the configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogEncoding = getEnv("APP_LOG_ENCODING", "json")
	cfg.GRPCHealthPort = getEnv("GRPC_HEALTH_PORT", "50051")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Throttling config
	cfg.ThrottleStore = getEnv("THROTTLE_STORE", "redis")
	cfg.ThrottleHeader = getEnv("THROTTLE_HEADER", "X-Custom-Throttle-Header")
	if cfg.ThrottleLimit, err = strconv.Atoi(getEnv("THROTTLE_LIMIT", "5")); err != nil {
		return
	}
	if cfg.ThrottleWindowSecond, err = strconv.Atoi(getEnv("THROTTLE_WINDOW_SECOND", "5")); err != nil {
		return
	}
	if cfg.ThrottleLimit <= 0 {
		err = fmt.Errorf("THROTTLE_LIMIT must be positive, got %d", cfg.ThrottleLimit)
		return
	}
	if cfg.ThrottleWindowSecond <= 0 {
		err = fmt.Errorf("THROTTLE_WINDOW_SECOND must be positive, got %d", cfg.ThrottleWindowSecond)
		return
	}

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "admin-login-events")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}
	cfg.JWTIssuer = getEnv("JWT_ISSUER", "gw-admin-auth")

	// Seeded admin
	cfg.AdminUsername = getEnv("ADMIN_USERNAME", "admin")
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", "pass")

	return
}
