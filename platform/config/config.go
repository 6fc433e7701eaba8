// Package config provides application configuration loaded from the
// environment. This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// HTTPConfig exposes the settings the HTTP router needs.
type HTTPConfig interface {
	GetEnv() string
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// DatabaseConfig exposes the settings the database layer needs.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// RedisConfig exposes the settings the likes store needs.
type RedisConfig interface {
	GetRedisURL() string
}

// EmailConfig exposes the settings the notification sender needs.
type EmailConfig interface {
	IsEmailEnabled() bool
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
	GetOwnerEmail() string
}

// Config holds all application settings.
type Config struct {
	Env         string
	HTTPAddr    string
	DatabaseURL string
	RedisURL    string

	CORSAllowAll bool
	CORSOrigins  []string

	RateLimitPerSecond float64
	RateLimitBurst     int

	ResumeFile   string
	GeminiAPIKey string

	EmailEnabled     bool
	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string
	EmailFromName    string
	EmailFromAddress string
	OwnerEmail       string
}

// Load reads configuration from the environment, with a .env file as fallback.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	emailEnabled := strings.EqualFold(getEnv("EMAIL_ENABLED", "false"), "true")

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379/0"),
		CORSAllowAll:       corsAllowAll,
		CORSOrigins:        corsOrigins,
		RateLimitPerSecond: mustFloat(getEnv("RATE_LIMIT_PER_SECOND", "2")),
		RateLimitBurst:     mustInt(getEnv("RATE_LIMIT_BURST", "5")),
		ResumeFile:         getEnv("RESUME_FILE", ""),
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		EmailEnabled:       emailEnabled,
		SMTPHost:           getEnv("SMTP_HOST", ""),
		SMTPPort:           mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername:       getEnv("SMTP_USERNAME", ""),
		SMTPPassword:       getEnv("SMTP_PASSWORD", ""),
		EmailFromName:      getEnv("EMAIL_FROM_NAME", "Resume Portal"),
		EmailFromAddress:   getEnv("EMAIL_FROM_ADDRESS", ""),
		OwnerEmail:         getEnv("OWNER_EMAIL", ""),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.EmailEnabled && (cfg.SMTPHost == "" || cfg.EmailFromAddress == "" || cfg.OwnerEmail == "") {
		return nil, fmt.Errorf("SMTP_HOST, EMAIL_FROM_ADDRESS and OWNER_EMAIL are required when EMAIL_ENABLED is true")
	}

	return cfg, nil
}

// Interface implementations.

func (c *Config) GetEnv() string              { return c.Env }
func (c *Config) GetHTTPAddr() string         { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool       { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string    { return c.CORSOrigins }
func (c *Config) GetDatabaseURL() string      { return c.DatabaseURL }
func (c *Config) GetRedisURL() string         { return c.RedisURL }
func (c *Config) IsEmailEnabled() bool        { return c.EmailEnabled }
func (c *Config) GetSMTPHost() string         { return c.SMTPHost }
func (c *Config) GetSMTPPort() int            { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string     { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string     { return c.SMTPPassword }
func (c *Config) GetEmailFromName() string    { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string { return c.EmailFromAddress }
func (c *Config) GetOwnerEmail() string       { return c.OwnerEmail }

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

func mustFloat(value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
