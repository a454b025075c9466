package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"gallery-backend/internal/shared"
)

type Config struct {
	App      AppConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	CORS     CORSConfig
	GraphQL  GraphQLConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string
}

type StorageConfig struct {
	Driver string // memory, postgres, redis
	Seed   bool
}

type DatabaseConfig struct {
	URL      string // overrides the discrete fields when set
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	MaxConns          int
	MinConns          int
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
	MaxRetries        int
	RetryDelay        time.Duration
	ConnectTimeout    time.Duration
}

type RedisConfig struct {
	Host      string
	Password  string
	DB        int
	KeyPrefix string
}

type CORSConfig struct {
	AllowedOrigins []string // "*" allows any origin
}

type GraphQLConfig struct {
	Playground bool
	MaxDepth   int
}

func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Gallery API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			Driver: getEnv("STORAGE_DRIVER", shared.DriverMemory),
			Seed:   getEnvBool("SEED_DATA", false),
		},
		Database: DatabaseConfig{
			URL:               getEnv("DATABASE_URL", ""),
			Host:              getEnv("DB_HOST", "localhost"),
			Port:              getEnvInt("DB_PORT", 5432),
			User:              getEnv("DB_USER", "postgres"),
			Password:          getEnv("DB_PASSWORD", ""),
			Database:          getEnv("DB_NAME", "gallery"),
			SSLMode:           getEnv("DB_SSLMODE", "disable"),
			MaxConns:          getEnvInt("DB_MAX_CONNS", 25),
			MinConns:          getEnvInt("DB_MIN_CONNS", 5),
			MaxConnLifetime:   getEnvDuration("DB_MAX_CONN_LIFETIME", 5*time.Minute),
			MaxConnIdleTime:   getEnvDuration("DB_MAX_CONN_IDLE_TIME", time.Minute),
			HealthCheckPeriod: getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
			MaxRetries:        getEnvInt("DB_MAX_RETRIES", 5),
			RetryDelay:        getEnvDuration("DB_RETRY_DELAY", time.Second),
			ConnectTimeout:    getEnvDuration("DB_CONNECT_TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			Host:      getEnv("REDIS_HOST", "localhost:6379"),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getEnvInt("REDIS_DB", 0),
			KeyPrefix: getEnv("REDIS_KEY_PREFIX", "gallery"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		GraphQL: GraphQLConfig{
			Playground: getEnvBool("GRAPHQL_PLAYGROUND", true),
			MaxDepth:   getEnvInt("GRAPHQL_MAX_DEPTH", 10),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.App,
		validation.Field(&c.App.Environment, validation.Required, validation.In("development", "staging", "production")),
		validation.Field(&c.App.Port, validation.Required),
		validation.Field(&c.App.LogLevel, validation.In("trace", "debug", "info", "warn", "error")),
	); err != nil {
		return fmt.Errorf("app: %w", err)
	}

	if err := validation.ValidateStruct(&c.Storage,
		validation.Field(&c.Storage.Driver, validation.Required, validation.In(shared.DriverMemory, shared.DriverPostgres, shared.DriverRedis)),
	); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	switch c.Storage.Driver {
	case shared.DriverPostgres:
		if err := validation.ValidateStruct(&c.Database,
			validation.Field(&c.Database.Host, validation.When(c.Database.URL == "", validation.Required)),
			validation.Field(&c.Database.Database, validation.When(c.Database.URL == "", validation.Required)),
			validation.Field(&c.Database.Port, validation.Min(1), validation.Max(65535)),
			validation.Field(&c.Database.MaxConns, validation.Min(1)),
			validation.Field(&c.Database.MinConns, validation.Min(0), validation.Max(c.Database.MaxConns)),
			validation.Field(&c.Database.MaxRetries, validation.Min(1)),
		); err != nil {
			return fmt.Errorf("database: %w", err)
		}
		if c.App.Environment == "production" && c.Database.URL == "" && c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
	case shared.DriverRedis:
		if err := validation.ValidateStruct(&c.Redis,
			validation.Field(&c.Redis.Host, validation.Required),
			validation.Field(&c.Redis.DB, validation.Min(0)),
			validation.Field(&c.Redis.KeyPrefix, validation.Required),
		); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}

	if err := validation.ValidateStruct(&c.CORS,
		validation.Field(&c.CORS.AllowedOrigins, validation.Required),
	); err != nil {
		return fmt.Errorf("cors: %w", err)
	}

	if err := validation.ValidateStruct(&c.GraphQL,
		validation.Field(&c.GraphQL.MaxDepth, validation.Min(0)),
	); err != nil {
		return fmt.Errorf("graphql: %w", err)
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvList splits a comma separated value, dropping empty entries.
func getEnvList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
