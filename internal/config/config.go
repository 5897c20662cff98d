package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrEmptyEnvironmentVariable = errors.New("empty environment variable")
	ErrInvalidValue             = errors.New("invalid configuration value")
)

// Config holds all application configuration
type Config struct {
	HubSpot   HubSpotConfig
	Google    GoogleConfig
	Speech    SpeechConfig
	Storage   StorageConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Sentry    SentryConfig
	Server    ServerConfig
	RateLimit RateLimitConfig
}

// HubSpotConfig holds CRM API settings
type HubSpotConfig struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration
}

// GoogleConfig holds Gemini settings
type GoogleConfig struct {
	AIAPIKey string
	Model    string
}

// SpeechConfig holds speech-to-text settings
type SpeechConfig struct {
	LanguageCode    string
	Model           string
	MinConfidence   float64
	OpusSampleRate  int64
	PollInterval    time.Duration
	MaxWait         time.Duration
	CredentialsFile string
}

// StorageConfig holds object storage settings for audio uploads
type StorageConfig struct {
	Bucket          string
	SignedURLTTL    time.Duration
	CredentialsFile string
}

// RedisConfig holds Redis settings. An empty Addr disables Redis.
// LockTTL must outlive two sequential CRM calls made under the contact lock.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	LockTTL  time.Duration
}

// Enabled reports whether Redis was configured
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// KafkaConfig holds event streaming settings. Empty Brokers disables publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Enabled reports whether Kafka was configured
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// SentryConfig holds error reporting settings
type SentryConfig struct {
	DSN         string
	Environment string
	Release     string
}

// RateLimitConfig bounds voice pipeline calls per client. Zero disables it.
type RateLimitConfig struct {
	RequestsPerMinute int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port      int
	WebAppURI string
}

// Load reads env.local outside production, then the process environment
func Load() (*Config, error) {
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}
	return LoadFromEnv()
}

// LoadFromEnv reads and validates all required environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{}
	var err error

	// HubSpot
	if cfg.HubSpot.AccessToken, err = requireEnv("HUBSPOT_TOKEN"); err != nil {
		return nil, err
	}
	cfg.HubSpot.BaseURL = strings.TrimRight(getEnvWithDefault("HUBSPOT_BASE_URL", "https://api.hubapi.com"), "/")
	if cfg.HubSpot.Timeout, err = durationEnv("HUBSPOT_TIMEOUT", "30s"); err != nil {
		return nil, err
	}

	// Gemini
	if cfg.Google.AIAPIKey, err = requireEnv("GOOGLE_AI_API_KEY"); err != nil {
		return nil, err
	}
	cfg.Google.Model = getEnvWithDefault("GEMINI_MODEL", "gemini-2.5-flash")

	// Speech
	cfg.Speech.LanguageCode = getEnvWithDefault("SPEECH_LANGUAGE", "pt-BR")
	cfg.Speech.Model = getEnvWithDefault("SPEECH_MODEL", "latest_long")
	cfg.Speech.CredentialsFile = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if cfg.Speech.MinConfidence, err = floatEnv("SPEECH_MIN_CONFIDENCE", "0.50"); err != nil {
		return nil, err
	}
	if cfg.Speech.MinConfidence <= 0 || cfg.Speech.MinConfidence > 1 {
		return nil, fmt.Errorf("SPEECH_MIN_CONFIDENCE must be in (0, 1], got %v: %w", cfg.Speech.MinConfidence, ErrInvalidValue)
	}
	cfg.Speech.OpusSampleRate, err = strconv.ParseInt(getEnvWithDefault("SPEECH_OPUS_SAMPLE_RATE", "48000"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SPEECH_OPUS_SAMPLE_RATE: %w", err)
	}
	if cfg.Speech.PollInterval, err = durationEnv("SPEECH_POLL_INTERVAL", "2s"); err != nil {
		return nil, err
	}
	if cfg.Speech.MaxWait, err = durationEnv("SPEECH_MAX_WAIT", "30m"); err != nil {
		return nil, err
	}

	// Storage
	if cfg.Storage.Bucket, err = requireEnv("AUDIO_BUCKET"); err != nil {
		return nil, err
	}
	cfg.Storage.CredentialsFile = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if cfg.Storage.SignedURLTTL, err = durationEnv("SIGNED_URL_TTL", "15m"); err != nil {
		return nil, err
	}

	// Redis
	cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	cfg.Redis.DB, err = strconv.Atoi(getEnvWithDefault("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
	}
	if cfg.Redis.LockTTL, err = durationEnv("CONTACT_LOCK_TTL", (3 * cfg.HubSpot.Timeout).String()); err != nil {
		return nil, err
	}
	if cfg.Redis.LockTTL <= 2*cfg.HubSpot.Timeout {
		return nil, fmt.Errorf("CONTACT_LOCK_TTL %s must exceed twice HUBSPOT_TIMEOUT %s: %w", cfg.Redis.LockTTL, cfg.HubSpot.Timeout, ErrInvalidValue)
	}

	// Kafka
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.Kafka.Brokers = append(cfg.Kafka.Brokers, b)
			}
		}
	}
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "crm-events")

	// Sentry
	cfg.Sentry.DSN = os.Getenv("SENTRY_DSN")
	cfg.Sentry.Environment = getEnvWithDefault("GO_ENV", "development")
	cfg.Sentry.Release = "voice-crm@" + getEnvWithDefault("APP_VERSION", "dev")

	// Server
	cfg.Server.Port, err = strconv.Atoi(getEnvWithDefault("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	cfg.Server.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:5173")

	// Rate limiting
	cfg.RateLimit.RequestsPerMinute, err = strconv.Atoi(getEnvWithDefault("RATE_LIMIT_RPM", "30"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse RATE_LIMIT_RPM: %w", err)
	}

	return cfg, nil
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func durationEnv(key, defaultValue string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return d, nil
}

func floatEnv(key, defaultValue string) (float64, error) {
	f, err := strconv.ParseFloat(getEnvWithDefault(key, defaultValue), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return f, nil
}
