// Package config loads runtime settings from the environment, an optional
// .env file, and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment keys.
const (
	KeyAppPort              = "APP_PORT"
	KeyDatabaseURL          = "DATABASE_URL"
	KeyKVBackend            = "KV_BACKEND"
	KeyKVPath               = "KV_PATH"
	KeyRedisURL             = "REDIS_URL"
	KeyAdminEmail           = "ADMIN_EMAIL"
	KeyAdminPassword        = "ADMIN_PASSWORD"
	KeyAdminPasswordHash    = "ADMIN_PASSWORD_HASH"
	KeyJWTSecret            = "JWT_SECRET"
	KeyGeminiAPIKey         = "GEMINI_API_KEY"
	KeyGeminiModel          = "GEMINI_MODEL"
	KeyNotificationTTL      = "NOTIFICATION_TTL"
	KeyCheckoutSuccessDelay = "CHECKOUT_SUCCESS_DELAY"
	KeySearchDebounce       = "SEARCH_DEBOUNCE"
	KeySessionIdleTTL       = "SESSION_IDLE_TTL"
	KeyLogLevel             = "LOG_LEVEL"
)

// Config is the fully resolved runtime configuration.
type Config struct {
	AppPort     string
	DatabaseURL string

	KVBackend string
	KVPath    string
	RedisURL  string

	AdminEmail        string
	AdminPassword     string
	AdminPasswordHash string
	JWTSecret         string

	GeminiAPIKey string
	GeminiModel  string

	NotificationTTL      time.Duration
	CheckoutSuccessDelay time.Duration
	SearchDebounce       time.Duration
	SessionIdleTTL       time.Duration

	LogLevel string
}

func defaults(v *viper.Viper) {
	v.SetDefault(KeyAppPort, "8080")
	v.SetDefault(KeyKVBackend, "file")
	v.SetDefault(KeyKVPath, ".indikart")
	v.SetDefault(KeyGeminiModel, "gemini-2.5-flash")
	v.SetDefault(KeyNotificationTTL, 3*time.Second)
	v.SetDefault(KeyCheckoutSuccessDelay, 2500*time.Millisecond)
	v.SetDefault(KeySearchDebounce, 300*time.Millisecond)
	v.SetDefault(KeySessionIdleTTL, 30*time.Minute)
	v.SetDefault(KeyLogLevel, "info")
}

// Load reads envFile (if it exists) into the process environment and
// resolves every key through viper. A missing env file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	defaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		AppPort:              v.GetString(KeyAppPort),
		DatabaseURL:          v.GetString(KeyDatabaseURL),
		KVBackend:            strings.ToLower(v.GetString(KeyKVBackend)),
		KVPath:               v.GetString(KeyKVPath),
		RedisURL:             v.GetString(KeyRedisURL),
		AdminEmail:           v.GetString(KeyAdminEmail),
		AdminPassword:        v.GetString(KeyAdminPassword),
		AdminPasswordHash:    v.GetString(KeyAdminPasswordHash),
		JWTSecret:            v.GetString(KeyJWTSecret),
		GeminiAPIKey:         v.GetString(KeyGeminiAPIKey),
		GeminiModel:          v.GetString(KeyGeminiModel),
		NotificationTTL:      v.GetDuration(KeyNotificationTTL),
		CheckoutSuccessDelay: v.GetDuration(KeyCheckoutSuccessDelay),
		SearchDebounce:       v.GetDuration(KeySearchDebounce),
		SessionIdleTTL:       v.GetDuration(KeySessionIdleTTL),
		LogLevel:             strings.ToLower(v.GetString(KeyLogLevel)),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch c.KVBackend {
	case "memory", "file", "sqlite", "redis":
	default:
		return fmt.Errorf("%s must be one of memory, file, sqlite, redis (got %q)", KeyKVBackend, c.KVBackend)
	}
	if c.KVBackend == "redis" && c.RedisURL == "" {
		return fmt.Errorf("%s is required when %s=redis", KeyRedisURL, KeyKVBackend)
	}
	if c.NotificationTTL <= 0 {
		return fmt.Errorf("%s must be positive", KeyNotificationTTL)
	}
	if c.CheckoutSuccessDelay < 0 {
		return fmt.Errorf("%s must not be negative", KeyCheckoutSuccessDelay)
	}
	if c.SearchDebounce < 0 {
		return fmt.Errorf("%s must not be negative", KeySearchDebounce)
	}
	if c.SessionIdleTTL < 0 {
		return fmt.Errorf("%s must not be negative", KeySessionIdleTTL)
	}
	return nil
}

// AdminEnabled reports whether admin login has credentials to check against.
func (c *Config) AdminEnabled() bool {
	return c.AdminEmail != "" && (c.AdminPassword != "" || c.AdminPasswordHash != "")
}
