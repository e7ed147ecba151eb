// Package config загружает конфигурацию сервера из окружения и .env файла.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DevJWTSecret секрет по умолчанию для локальной разработки
const DevJWTSecret = "dev-secret-change-in-production"

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	WebSocket WebSocketConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Address         string        `validate:"required,hostname_port"`
	Env             string        `validate:"oneof=development production"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

type DatabaseConfig struct {
	Path string `validate:"required"`
}

type JWTConfig struct {
	Secret     string        `validate:"required,min=16"`
	Expiration time.Duration `validate:"gt=0"`
}

type WebSocketConfig struct {
	WriteWait      time.Duration `validate:"gt=0"`
	PongWait       time.Duration `validate:"gt=0"`
	PingPeriod     time.Duration `validate:"gt=0,ltfield=PongWait"`
	MaxConnPerUser int           `validate:"gte=1"`
	SendBuffer     int           `validate:"gte=1"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `validate:"gte=1"`
	Enabled           bool
}

type LoggingConfig struct {
	Level      string `validate:"oneof=debug info warn warning error"`
	Format     string `validate:"oneof=auto text json"`
	File       string
	MaxSizeMB  int `validate:"gte=0"`
	MaxBackups int `validate:"gte=0"`
	MaxAgeDays int `validate:"gte=0"`
}

// Load читает envFile (если он есть), затем переменные окружения.
// Переменные окружения имеют приоритет над значениями из файла.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	var errs []error
	duration := func(key, def string) time.Duration {
		d, err := getEnvAsDuration(key, def)
		if err != nil {
			errs = append(errs, err)
		}
		return d
	}

	cfg := &Config{
		Server: ServerConfig{
			Address:         getEnv("SERVER_ADDRESS", "localhost:8080"),
			Env:             getEnv("ENV", "development"),
			ShutdownTimeout: duration("SHUTDOWN_TIMEOUT", "10s"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "notekeeper.db"),
		},
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", DevJWTSecret),
			Expiration: duration("JWT_EXPIRATION", "720h"),
		},
		WebSocket: WebSocketConfig{
			WriteWait:      duration("WS_WRITE_WAIT", "10s"),
			PongWait:       duration("WS_PONG_WAIT", "60s"),
			PingPeriod:     duration("WS_PING_PERIOD", "54s"),
			MaxConnPerUser: getEnvAsInt("WS_MAX_CONN_PER_USER", 5),
			SendBuffer:     getEnvAsInt("WS_SEND_BUFFER", 16),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: getEnvAsInt("RATE_LIMIT_REQUESTS_PER_MINUTE", 60),
			Enabled:           getEnvAsBool("RATE_LIMIT_ENABLED", true),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "auto"),
			File:       getEnv("LOG_FILE", ""),
			MaxSizeMB:  getEnvAsInt("LOG_MAX_SIZE_MB", 10),
			MaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 3),
			MaxAgeDays: getEnvAsInt("LOG_MAX_AGE_DAYS", 28),
		},
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения конфигурации.
// В production dev секрет JWT запрещен.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Server.Env == "production" && c.JWT.Secret == DevJWTSecret {
		return errors.New("invalid config: JWT_SECRET must be set in production")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key, defaultValue string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
