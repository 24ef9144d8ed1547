package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type Config struct {
	Port        string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	AutoMigrate bool
	GinMode     string
	LogLevel    string

	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	ProfileCacheTTL time.Duration

	MinDownPaymentPct decimal.Decimal
	MaxTermMonths     int
	ProformaValidity  time.Duration
	ExpiryCron        string

	OTELEndpoint    string
	OTELServiceName string
}

// Load reads the environment, after applying a .env file when one exists.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Info().Msg("loaded .env file")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "dcs"),
		DBPassword:  getEnv("DB_PASSWORD", "dcs_secret"),
		DBName:      getEnv("DB_NAME", "dcs"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),
		AutoMigrate: getEnv("AUTO_MIGRATE", "false") == "true",
		GinMode:     getEnv("GIN_MODE", "debug"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		ProfileCacheTTL: getEnvDuration("PROFILE_CACHE_TTL", 15*time.Minute),

		MinDownPaymentPct: getEnvDecimal("MIN_DOWN_PAYMENT_PCT", decimal.NewFromInt(20)),
		MaxTermMonths:     getEnvInt("MAX_TERM_MONTHS", 72),
		ProformaValidity:  getEnvDuration("PROFORMA_VALIDITY", 15*24*time.Hour),
		ExpiryCron:        getEnv("PROFORMA_EXPIRY_CRON", "@every 1h"),

		OTELEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		OTELServiceName: getEnv("OTEL_SERVICE_NAME", "dealer-credit-simulator"),
	}
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("invalid integer, using default")
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("invalid duration, using default")
		return fallback
	}
	return d
}

func getEnvDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("invalid decimal, using default")
		return fallback
	}
	return d
}
