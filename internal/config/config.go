package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type LLMConfig struct {
	APIKey           string
	Model            string
	Mock             bool
	NaturalResponses bool
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

type SessionConfig struct {
	Store         string // memory | redis
	TTL           time.Duration
	RedisURL      string // host:port or redis:// URL
	RedisPassword string
	RedisDB       int
}

type Config struct {
	Port               string
	Environment        string
	DefaultLanguage    string
	LLM                LLMConfig
	Retry              RetryConfig
	Session            SessionConfig
	PriceSheetPath     string
	PriceCacheTTL      time.Duration
	ExtractionCacheTTL time.Duration
	DictionaryPath     string
	LogisticsProvider  string
}

// Load reads .env (when present) and then the process environment.
// Malformed values fall back to their defaults with a warning.
func Load(log *logrus.Entry) Config {
	_ = godotenv.Load()
	r := reader{log: log}

	cfg := Config{
		Port:            envOr("PORT", "8080"),
		Environment:     envOr("ENVIRONMENT", "local"),
		DefaultLanguage: envOr("DEFAULT_LANGUAGE", "en"),
		LLM: LLMConfig{
			APIKey:           os.Getenv("GEMINI_API_KEY"),
			Model:            envOr("GEMINI_MODEL", "gemini-2.0-flash"),
			Mock:             r.bool("USE_MOCK_LLM", false),
			NaturalResponses: r.bool("NATURAL_RESPONSES", true),
		},
		Retry: RetryConfig{
			MaxAttempts: r.int("RETRY_MAX_ATTEMPTS", 3),
			BaseDelay:   r.duration("RETRY_BASE_DELAY", time.Second),
		},
		Session: SessionConfig{
			Store:         strings.ToLower(envOr("SESSION_STORE", "memory")),
			TTL:           r.duration("SESSION_TTL", 30*time.Minute),
			RedisURL:      envOr("REDIS_URL", "localhost:6379"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			RedisDB:       r.int("REDIS_DB", 0),
		},
		PriceSheetPath:     os.Getenv("PRICE_SHEET_PATH"),
		PriceCacheTTL:      r.duration("PRICE_CACHE_TTL", 15*time.Minute),
		ExtractionCacheTTL: r.duration("EXTRACTION_CACHE_TTL", 5*time.Minute),
		DictionaryPath:     os.Getenv("DICTIONARY_PATH"),
		LogisticsProvider:  envOr("LOGISTICS_PROVIDER", "default-logistics"),
	}
	if cfg.Retry.MaxAttempts < 1 {
		r.warn("RETRY_MAX_ATTEMPTS", strconv.Itoa(cfg.Retry.MaxAttempts))
		cfg.Retry.MaxAttempts = 3
	}
	return cfg
}

// LLMEnabled reports whether a live model should be used.
func (c Config) LLMEnabled() bool {
	return !c.LLM.Mock && c.LLM.APIKey != ""
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

type reader struct {
	log *logrus.Entry
}

func (r reader) warn(key, value string) {
	if r.log != nil {
		r.log.WithFields(logrus.Fields{"key": key, "value": value}).Warn("invalid config value, using default")
	}
}

func (r reader) duration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		r.warn(key, v)
		return def
	}
	return d
}

func (r reader) int(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		r.warn(key, v)
		return def
	}
	return n
}

func (r reader) bool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		r.warn(key, v)
		return def
	}
	return b
}
