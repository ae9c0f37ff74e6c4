package service

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"pdf-text-extractor/internal/domain"
	apperrors "pdf-text-extractor/pkg/errors"
)

// FetchService downloads remote files over plain HTTP
type FetchService struct {
	client  *http.Client
	maxSize int64
	logger  domain.Logger
}

// NewFetchService creates a new fetch service instance
func NewFetchService(config domain.Config, logger domain.Logger) *FetchService {
	return &FetchService{
		client: &http.Client{
			Timeout: config.GetFetchTimeout(),
		},
		maxSize: config.GetMaxFileSize(),
		logger:  logger,
	}
}

// Fetch issues one GET against fileURL and buffers the full body in memory.
// A non-success upstream status yields the fixed client error; everything
// else that goes wrong is a server-side fault.
func (s *FetchService) Fetch(ctx context.Context, fileURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, apperrors.NewFetchFailedError(err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperrors.NewFetchFailedError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		s.logger.Warn("Upstream returned non-success status", "url", fileURL, "status", resp.StatusCode)
		return nil, apperrors.NewUpstreamStatusError(resp.StatusCode)
	}

	reader := io.Reader(resp.Body)
	if s.maxSize > 0 {
		// Read one extra byte so an oversized body is detectable.
		reader = io.LimitReader(resp.Body, s.maxSize+1)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, apperrors.NewFetchFailedError(err)
	}
	if s.maxSize > 0 && int64(len(data)) > s.maxSize {
		return nil, apperrors.NewFetchFailedError(
			fmt.Errorf("%w: limit is %d bytes", domain.ErrFileTooLarge, s.maxSize))
	}

	s.logger.Debug("Fetched remote file", "url", fileURL, "size_bytes", len(data))
	return data, nil
}
