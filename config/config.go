// Package config loads storefront settings from an optional YAML file, a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the storefront settings. Environment variables override the YAML file.
type Config struct {
	AppEnv   string `yaml:"app_env"`
	LogLevel string `yaml:"log_level"`
	Port     int    `yaml:"port"`

	BackendURL     string        `yaml:"backend_url"`
	BackendTimeout time.Duration `yaml:"backend_timeout"`
	JWTSecret      string        `yaml:"jwt_secret"`

	MongoURI string `yaml:"mongo_uri"`
	MongoDB  string `yaml:"mongo_db"`
	RedisURL string `yaml:"redis_url"`

	SendGridAPIKey string `yaml:"sendgrid_api_key"`
	EmailSender    string `yaml:"email_sender"`

	RecommendationLimit int           `yaml:"recommendation_limit"`
	RecommendationTTL   time.Duration `yaml:"recommendation_ttl"`
	StoreIdleTTL        time.Duration `yaml:"store_idle_ttl"`
}

func defaults() Config {
	return Config{
		AppEnv:              "dev",
		LogLevel:            "info",
		Port:                8000,
		BackendURL:          "http://localhost:8080",
		BackendTimeout:      10 * time.Second,
		MongoDB:             "catdogeats",
		RecommendationLimit: 4,
		RecommendationTTL:   10 * time.Minute,
		StoreIdleTTL:        30 * time.Minute,
	}
}

// Load reads CONFIG_FILE (if set), then .env (if present), then the environment
func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	// a missing .env is fine; variables may come from the environment
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays environment variables. A variable that is set but malformed
// is an error rather than a silent fallback.
func (c *Config) applyEnv() error {
	c.AppEnv = getEnv("APP_ENV", c.AppEnv)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.BackendURL = getEnv("BACKEND_URL", c.BackendURL)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.MongoURI = getEnv("MONGO_URI", c.MongoURI)
	c.MongoDB = getEnv("MONGO_DB", c.MongoDB)
	c.RedisURL = getEnv("REDIS_URL", c.RedisURL)
	c.SendGridAPIKey = getEnv("SENDGRID_API_KEY", c.SendGridAPIKey)
	c.EmailSender = getEnv("EMAIL_SENDER", c.EmailSender)
	return errors.Join(
		getEnvInt("PORT", &c.Port),
		getEnvInt("RECOMMENDATION_LIMIT", &c.RecommendationLimit),
		getEnvDuration("BACKEND_TIMEOUT", &c.BackendTimeout),
		getEnvDuration("RECOMMENDATION_TTL", &c.RecommendationTTL),
		getEnvDuration("STORE_IDLE_TTL", &c.StoreIdleTTL),
	)
}

// Validate reports settings the storefront cannot start without
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.BackendURL == "" {
		return fmt.Errorf("BACKEND_URL is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.RecommendationLimit < 1 {
		return fmt.Errorf("RECOMMENDATION_LIMIT must be positive")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: invalid integer %q", key, v)
	}
	*dst = n
	return nil
}

func getEnvDuration(key string, dst *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: invalid duration %q", key, v)
	}
	*dst = d
	return nil
}
