package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries all service configuration. It is loaded once at startup
// and passed explicitly into the components that need it; nothing reads
// the environment after Load returns.
type Config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDatabase     string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers          []string
	KafkaTransactionTopic string

	JWTSecretKey string
	JWTExp       time.Duration

	OTPTTL    time.Duration
	OTPDigits int

	TransferExpiry       time.Duration
	PaymentRequestExpiry time.Duration
	AuthorizationExpiry  time.Duration
	SweepInterval        time.Duration

	CardValidatorMock    bool
	CardWorkers          int
	CardRetryMaxAttempts int
	CardRetryBackoffBase time.Duration
	CardStaleThreshold   time.Duration
}

// Load reads configuration from an env file (if present) and the process
// environment, falling back to defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var err error
	getInt := func(key string, defaultValue int) int {
		if err != nil {
			return 0
		}
		var v int
		if v, err = strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue))); err != nil {
			err = fmt.Errorf("invalid %s: %w", key, err)
			return 0
		}
		return v
	}
	getDuration := func(key, defaultValue string) time.Duration {
		if err != nil {
			return 0
		}
		var d time.Duration
		if d, err = time.ParseDuration(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("invalid %s: %w", key, err)
			return 0
		}
		return d
	}
	getBool := func(key string, defaultValue bool) bool {
		if err != nil {
			return false
		}
		var b bool
		if b, err = strconv.ParseBool(getEnv(key, strconv.FormatBool(defaultValue))); err != nil {
			err = fmt.Errorf("invalid %s: %w", key, err)
			return false
		}
		return b
	}

	cfg := &Config{
		AppHost:  getEnv("APP_HOST", "localhost"),
		AppPort:  getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),

		PGHost:         getEnv("POSTGRES_HOST", "localhost"),
		PGPort:         getInt("POSTGRES_PORT", 5432),
		PGUser:         getEnv("POSTGRES_USER", "user"),
		PGPassword:     getEnv("POSTGRES_PASSWORD", "password"),
		PGDatabase:     getEnv("POSTGRES_DB", "wallet_ledger"),
		PGMaxOpenConns: getInt("POSTGRES_MAX_OPEN_CONNS", 16),
		PGMaxIdleConns: getInt("POSTGRES_MAX_IDLE_CONNS", 8),

		RedisHost:         getEnv("REDIS_HOST", "localhost"),
		RedisPort:         getInt("REDIS_PORT", 6379),
		RedisDB:           getInt("REDIS_DB", 0),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisPoolSize:     getInt("REDIS_POOL_SIZE", 10),
		RedisMinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", 2),

		KafkaBrokers:          strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		KafkaTransactionTopic: getEnv("KAFKA_TRANSACTION_TOPIC", "wallet-transactions"),

		JWTSecretKey: getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
		JWTExp:       getDuration("JWT_EXP", "1h"),

		OTPTTL:    getDuration("OTP_TTL", "2m"),
		OTPDigits: getInt("OTP_DIGITS", 6),

		TransferExpiry:       getDuration("TRANSFER_EXPIRY", "1m"),
		PaymentRequestExpiry: getDuration("PAYMENT_REQUEST_EXPIRY", "15m"),
		AuthorizationExpiry:  getDuration("AUTHORIZATION_EXPIRY", "15m"),
		SweepInterval:        getDuration("SWEEP_INTERVAL", "1m"),

		CardValidatorMock:    getBool("CARD_VALIDATOR_MOCK", true),
		CardWorkers:          getInt("CARD_WORKERS", 4),
		CardRetryMaxAttempts: getInt("CARD_RETRY_MAX_ATTEMPTS", 3),
		CardRetryBackoffBase: getDuration("CARD_RETRY_BACKOFF_BASE", "60s"),
		CardStaleThreshold:   getDuration("CARD_STALE_THRESHOLD", "10m"),
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// PostgresDSN builds the connection string for sqlx/pgx.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase)
}

// RedisAddr returns host:port for the Redis client.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}
