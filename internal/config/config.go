package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"pdf-text-extractor/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort    string
	LogLevel      string
	MaxFileSize   int64
	FetchTimeout  time.Duration
	PDFEngine     string
	SupabaseURL   string
	SupabaseKey   string
	ArchiveBucket string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:  getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
		MaxFileSize: getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		// Zero means no request-level timeout; the platform's execution
		// ceiling is the only limit then.
		FetchTimeout:  time.Duration(getEnvInt64OrDefault("FETCH_TIMEOUT_SECONDS", 0)) * time.Second,
		PDFEngine:     strings.ToLower(getEnvOrDefault("PDF_ENGINE", "auto")),
		SupabaseURL:   getEnvOrDefault("SUPABASE_URL", ""),
		SupabaseKey:   getEnvOrDefault("SUPABASE_ANON_KEY", ""),
		ArchiveBucket: getEnvOrDefault("ARCHIVE_BUCKET", ""),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetMaxFileSize returns the maximum allowed size of a downloaded file
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetFetchTimeout returns the timeout applied to outbound fetches
func (c *AppConfig) GetFetchTimeout() time.Duration {
	return c.FetchTimeout
}

// GetPDFEngine returns the configured extraction engine (auto, fitz or native)
func (c *AppConfig) GetPDFEngine() string {
	return c.PDFEngine
}

// GetSupabaseURL returns the Supabase URL
func (c *AppConfig) GetSupabaseURL() string {
	return c.SupabaseURL
}

// GetSupabaseKey returns the Supabase anon key
func (c *AppConfig) GetSupabaseKey() string {
	return c.SupabaseKey
}

// GetArchiveBucket returns the storage bucket for archived extractions
func (c *AppConfig) GetArchiveBucket() string {
	return c.ArchiveBucket
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
