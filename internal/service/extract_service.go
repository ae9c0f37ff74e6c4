package service

import (
	"context"
	"strings"
	"time"

	"pdf-text-extractor/internal/domain"
	apperrors "pdf-text-extractor/pkg/errors"
)

const archiveTimeout = 30 * time.Second

// ExtractService orchestrates the fetch-then-extract pipeline
type ExtractService struct {
	fetcher   domain.Fetcher
	extractor domain.TextExtractor
	archiver  domain.Archiver
	logger    domain.Logger
}

// NewExtractService creates a new extract service instance
func NewExtractService(
	fetcher domain.Fetcher,
	extractor domain.TextExtractor,
	archiver domain.Archiver,
	logger domain.Logger,
) *ExtractService {
	return &ExtractService{
		fetcher:   fetcher,
		extractor: extractor,
		archiver:  archiver,
		logger:    logger,
	}
}

// ExtractFromURL downloads the file at fileURL and returns its embedded
// text with leading/trailing whitespace trimmed. An empty text layer is
// not an error.
func (s *ExtractService) ExtractFromURL(ctx context.Context, fileURL string) (string, error) {
	data, err := s.fetcher.Fetch(ctx, fileURL)
	if err != nil {
		return "", err
	}

	text, err := s.extractor.ExtractText(data)
	if err != nil {
		s.logger.Error("Text extraction failed", err, "url", fileURL, "engine", s.extractor.Name())
		return "", apperrors.NewExtractionError(err)
	}

	text = strings.TrimSpace(text)
	s.logger.Info("Extracted text", "url", fileURL, "engine", s.extractor.Name(),
		"file_bytes", len(data), "text_chars", len(text))

	if s.archiver != nil && s.archiver.Enabled() {
		record := domain.ExtractionRecord{
			SourceURL: fileURL,
			Text:      text,
			SizeBytes: int64(len(data)),
			Engine:    s.extractor.Name(),
		}
		// Archival is best-effort; it never changes the response.
		go s.archive(record)
	}

	return text, nil
}

func (s *ExtractService) archive(record domain.ExtractionRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
	defer cancel()

	if err := s.archiver.Archive(ctx, record); err != nil {
		s.logger.Warn("Failed to archive extracted text", "source_url", record.SourceURL, "error", err)
	}
}
