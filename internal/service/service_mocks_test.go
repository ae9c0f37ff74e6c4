package service

import (
	"time"

	"pdf-text-extractor/internal/domain"
)

// Mock implementations shared by the service package tests.

type MockServiceLogger struct{}

func NewMockServiceLogger() domain.Logger {
	return &MockServiceLogger{}
}

func (l *MockServiceLogger) Info(msg string, fields ...interface{})             {}
func (l *MockServiceLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *MockServiceLogger) Debug(msg string, fields ...interface{})            {}
func (l *MockServiceLogger) Warn(msg string, fields ...interface{})             {}

type MockConfig struct {
	serverPort    string
	logLevel      string
	maxFileSize   int64
	fetchTimeout  time.Duration
	pdfEngine     string
	supabaseURL   string
	supabaseKey   string
	archiveBucket string
}

func (c *MockConfig) GetServerPort() string          { return c.serverPort }
func (c *MockConfig) GetLogLevel() string            { return c.logLevel }
func (c *MockConfig) GetMaxFileSize() int64          { return c.maxFileSize }
func (c *MockConfig) GetFetchTimeout() time.Duration { return c.fetchTimeout }
func (c *MockConfig) GetPDFEngine() string           { return c.pdfEngine }
func (c *MockConfig) GetSupabaseURL() string         { return c.supabaseURL }
func (c *MockConfig) GetSupabaseKey() string         { return c.supabaseKey }
func (c *MockConfig) GetArchiveBucket() string       { return c.archiveBucket }
