package service

import (
	"errors"

	"pdf-text-extractor/internal/domain"
)

// ChainExtractor tries a sequence of engines in order and returns the
// first successful result. When every engine fails, the first engine's
// error is surfaced since that is the preferred backend.
type ChainExtractor struct {
	logger  domain.Logger
	engines []domain.TextExtractor
}

// NewChainExtractor creates an extractor that falls through engines in order
func NewChainExtractor(logger domain.Logger, engines ...domain.TextExtractor) *ChainExtractor {
	return &ChainExtractor{
		logger:  logger,
		engines: engines,
	}
}

// Name returns the engine name
func (e *ChainExtractor) Name() string {
	return "auto"
}

// ExtractText extracts plain text from PDF bytes
func (e *ChainExtractor) ExtractText(data []byte) (string, error) {
	var firstErr error
	for _, engine := range e.engines {
		text, err := engine.ExtractText(data)
		if err == nil {
			return text, nil
		}
		e.logger.Warn("PDF engine failed, trying next", "engine", engine.Name(), "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr == nil {
		firstErr = errors.New("no PDF engines configured")
	}
	return "", firstErr
}
