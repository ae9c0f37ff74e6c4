package domain

import (
	"context"
	"time"
)

// Fetcher downloads a remote file and returns its raw bytes
type Fetcher interface {
	Fetch(ctx context.Context, fileURL string) ([]byte, error)
}

// TextExtractor turns the raw bytes of a PDF into plain text
type TextExtractor interface {
	Name() string
	ExtractText(data []byte) (string, error)
}

// ExtractService runs the full fetch-then-extract pipeline for one URL
type ExtractService interface {
	ExtractFromURL(ctx context.Context, fileURL string) (string, error)
}

// Archiver persists completed extractions for the downstream pipeline.
// Implementations may be disabled when storage is not configured.
type Archiver interface {
	Enabled() bool
	Archive(ctx context.Context, record ExtractionRecord) error
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetMaxFileSize() int64
	GetFetchTimeout() time.Duration
	GetPDFEngine() string
	GetSupabaseURL() string
	GetSupabaseKey() string
	GetArchiveBucket() string
}
