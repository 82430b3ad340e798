package config

import (
	"os"
	"strconv"
)

// Server front-end modes
const (
	ModeHTTP = "http" // REST endpoint plus MCP tool surface
	ModeMCP  = "mcp"  // MCP tool surface only
)

// Config holds all configuration for the application
type Config struct {
	// Gemini
	GeminiAPIKey string
	GeminiModel  string

	// Server
	Port  string
	Debug bool
	Mode  string

	// Timeouts
	HTTPTimeoutSeconds int
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		// Credential: GEMINI_API_KEY wins over GOOGLE_API_KEY; empty means
		// extraction runs in degraded mode, which is a valid deployment
		GeminiAPIKey: firstEnv("GEMINI_API_KEY", "GOOGLE_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash-exp"),

		Port:  getEnv("PORT", "8080"),
		Debug: getEnvBool("DEBUG", false),
		Mode:  getEnv("MODE", ModeHTTP),

		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 30),
	}
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.GeminiModel == "" {
		return &ConfigError{Field: "GEMINI_MODEL", Message: "GEMINI_MODEL must not be empty"}
	}
	if c.Mode != ModeHTTP && c.Mode != ModeMCP {
		return &ConfigError{Field: "MODE", Message: "MODE must be one of: http, mcp"}
	}
	if c.HTTPTimeoutSeconds <= 0 {
		return &ConfigError{Field: "HTTP_TIMEOUT_SECONDS", Message: "HTTP_TIMEOUT_SECONDS must be positive"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
