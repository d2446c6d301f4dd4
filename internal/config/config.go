package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Processor  ProcessorConfig
	Bank       BankConfig
	Security   SecurityConfig
	Reconciler ReconcilerConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode + "&prepare_threshold=0"
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	PASSWORD string
}

// ProcessorConfig holds card processor API credentials
type ProcessorConfig struct {
	BaseURL      string
	UserID       string
	Password     string
	SourceID     string
	ClientID     string
	SubProgramID string
	PackageID    string
	Timeout      time.Duration
}

// BankConfig holds the e-transfer / bill-payment partner credentials
type BankConfig struct {
	BaseURL        string
	AuthToken      string
	CustomerNumber string
	Timeout        time.Duration
}

// SecurityConfig holds session encryption settings
type SecurityConfig struct {
	SessionEncryptionKey string
	SessionTTL           time.Duration
	AccessCodeTTL        time.Duration
}

// ReconcilerConfig holds the stale payout scan settings
type ReconcilerConfig struct {
	MaxAge   time.Duration
	Interval time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "cardwallet"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			PASSWORD: getEnv("REDIS_PASSWORD", ""),
		},
		Processor: ProcessorConfig{
			BaseURL:      getEnv("PROCESSOR_BASE_URL", "https://sandbox.processor.example.com"),
			UserID:       getEnv("PROCESSOR_USER_ID", ""),
			Password:     getEnv("PROCESSOR_PASSWORD", ""),
			SourceID:     getEnv("PROCESSOR_SOURCE_ID", ""),
			ClientID:     getEnv("PROCESSOR_CLIENT_ID", ""),
			SubProgramID: getEnv("PROCESSOR_SUBPROGRAM_ID", ""),
			PackageID:    getEnv("PROCESSOR_PACKAGE_ID", ""),
			Timeout:      getEnvAsDuration("PROCESSOR_TIMEOUT", 30*time.Second),
		},
		Bank: BankConfig{
			BaseURL:        getEnv("BANK_BASE_URL", "https://sandbox.bankpartner.example.com"),
			AuthToken:      getEnv("BANK_AUTH_TOKEN", ""),
			CustomerNumber: getEnv("BANK_CUSTOMER_NUMBER", ""),
			Timeout:        getEnvAsDuration("BANK_TIMEOUT", 30*time.Second),
		},
		Security: SecurityConfig{
			SessionEncryptionKey: getEnv("SESSION_ENCRYPTION_KEY", "0000000000000000000000000000000000000000000000000000000000000000"), // 32-bytes hex string
			SessionTTL:           getEnvAsDuration("SESSION_TTL", time.Hour),
			AccessCodeTTL:        getEnvAsDuration("ACCESS_CODE_TTL", 30*time.Minute),
		},
		Reconciler: ReconcilerConfig{
			MaxAge:   getEnvAsDuration("PAYOUT_STALE_AFTER", time.Hour),
			Interval: getEnvAsDuration("PAYOUT_SCAN_INTERVAL", 10*time.Minute),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
