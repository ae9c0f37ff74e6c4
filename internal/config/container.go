package config

import (
	"pdf-text-extractor/internal/domain"
	"pdf-text-extractor/internal/repository"
	"pdf-text-extractor/internal/service"
	"pdf-text-extractor/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config         domain.Config
	Logger         domain.Logger
	Fetcher        domain.Fetcher
	Extractor      domain.TextExtractor
	Archiver       domain.Archiver
	ExtractService domain.ExtractService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	fetcher := service.NewFetchService(config, appLogger)
	extractor := newExtractor(config, appLogger)
	archiver := repository.NewSupabaseArchiveRepository(config, appLogger)
	extractService := service.NewExtractService(fetcher, extractor, archiver, appLogger)

	return &Container{
		Config:         config,
		Logger:         appLogger,
		Fetcher:        fetcher,
		Extractor:      extractor,
		Archiver:       archiver,
		ExtractService: extractService,
	}
}

// newExtractor selects the PDF engine. The default "auto" chain prefers
// fitz and falls back to the pure-Go reader when it fails.
func newExtractor(config domain.Config, appLogger domain.Logger) domain.TextExtractor {
	switch config.GetPDFEngine() {
	case "fitz":
		return service.NewFitzExtractor(appLogger)
	case "native":
		return service.NewNativeExtractor()
	default:
		return service.NewChainExtractor(appLogger,
			service.NewFitzExtractor(appLogger),
			service.NewNativeExtractor(),
		)
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetExtractService returns the extraction pipeline service
func (c *Container) GetExtractService() domain.ExtractService {
	return c.ExtractService
}
