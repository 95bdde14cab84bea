package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	HRAPI    HRAPIConfig
	Currency CurrencyConfig
	Sync     SyncConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string

	// Pool sizing for the snapshot store
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret                string
	AccessTokenExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port               int
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string
}

// HRAPIConfig holds the remote HR backend connection settings
type HRAPIConfig struct {
	BaseURL      string
	Timeout      time.Duration
	Token        string
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scopes       []string
}

// CurrencyConfig controls how amounts are rendered for display
type CurrencyConfig struct {
	Locale string
	Suffix string
}

// SyncConfig controls the background snapshot refresh
type SyncConfig struct {
	Interval     time.Duration
	LookbackDays int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file loaded, using process environment", "error", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	maxConns, err := strconv.ParseInt(getEnv("DB_MAX_CONNS", "10"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	minConns, err := strconv.ParseInt(getEnv("DB_MIN_CONNS", "2"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}
	connLifetime, err := time.ParseDuration(getEnv("DB_MAX_CONN_LIFETIME", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONN_LIFETIME: %w", err)
	}
	connIdleTime, err := time.ParseDuration(getEnv("DB_MAX_CONN_IDLE_TIME", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONN_IDLE_TIME: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:            getEnv("DB_HOST", "localhost"),
		Port:            dbPort,
		User:            getEnv("DB_USER", "postgres"),
		Password:        getEnv("DB_PASSWORD", ""),
		Name:            getEnv("DB_NAME", "cmlabs-hris-salary"),
		SSLMode:         getEnv("DB_SSL_MODE", "disable"),
		MaxConns:        int32(maxConns),
		MinConns:        int32(minConns),
		MaxConnLifetime: connLifetime,
		MaxConnIdleTime: connIdleTime,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:               appPort,
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
	}
	if len(config.App.CORSAllowedOrigins) == 0 {
		config.App.CORSAllowedOrigins = []string{"http://localhost:3000"}
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:                getEnv("JWT_SECRET_KEY", ""),
		AccessTokenExpiration: getEnv("JWT_ACCESS_TOKEN_EXPIRATION", "15m"),
	}

	// HR backend configuration
	hrTimeout, err := time.ParseDuration(getEnv("HR_API_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HR_API_TIMEOUT: %w", err)
	}

	config.HRAPI = HRAPIConfig{
		BaseURL:      strings.TrimRight(getEnv("HR_API_BASE_URL", ""), "/"),
		Timeout:      hrTimeout,
		Token:        getEnv("HR_API_TOKEN", ""),
		ClientID:     getEnv("HR_API_CLIENT_ID", ""),
		ClientSecret: getEnv("HR_API_CLIENT_SECRET", ""),
		TokenURL:     getEnv("HR_API_TOKEN_URL", ""),
		Scopes:       getEnvSlice("HR_API_SCOPES"),
	}

	// Currency display
	config.Currency = CurrencyConfig{
		Locale: getEnv("CURRENCY_LOCALE", "vi-VN"),
		Suffix: getEnv("CURRENCY_SUFFIX", "đ"),
	}

	// Snapshot refresh
	syncInterval, err := time.ParseDuration(getEnv("SYNC_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SYNC_INTERVAL: %w", err)
	}
	lookbackDays, err := strconv.Atoi(getEnv("SYNC_LOOKBACK_DAYS", "31"))
	if err != nil {
		return nil, fmt.Errorf("invalid SYNC_LOOKBACK_DAYS: %w", err)
	}

	config.Sync = SyncConfig{
		Interval:     syncInterval,
		LookbackDays: lookbackDays,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be at least 1")
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_TOKEN_EXPIRATION: %w", err)
	}
	if c.HRAPI.BaseURL == "" {
		return fmt.Errorf("HR_API_BASE_URL is required")
	}
	if c.HRAPI.ClientID != "" && c.HRAPI.TokenURL == "" {
		return fmt.Errorf("HR_API_TOKEN_URL is required when HR_API_CLIENT_ID is set")
	}
	if c.Sync.Interval <= 0 {
		return fmt.Errorf("SYNC_INTERVAL must be positive")
	}
	if c.Sync.LookbackDays < 1 {
		return fmt.Errorf("SYNC_LOOKBACK_DAYS must be at least 1")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
