package repository

import (
	"context"
	"fmt"
	"strings"

	"pdf-text-extractor/internal/domain"

	"github.com/google/uuid"
)

// SupabaseArchiveRepository uploads extracted text to a Supabase Storage
// bucket so the downstream pipeline can pick it up. When storage is not
// configured the repository stays disabled and Archive is a no-op.
type SupabaseArchiveRepository struct {
	client  *SupabaseClient
	bucket  string
	logger  domain.Logger
	enabled bool
}

// NewSupabaseArchiveRepository creates the archiver. Missing Supabase
// settings disable archival rather than failing startup.
func NewSupabaseArchiveRepository(config domain.Config, logger domain.Logger) domain.Archiver {
	repo := &SupabaseArchiveRepository{
		bucket: config.GetArchiveBucket(),
		logger: logger,
	}

	if config.GetSupabaseURL() == "" || config.GetSupabaseKey() == "" || repo.bucket == "" {
		logger.Info("Extraction archival disabled; Supabase storage not configured")
		return repo
	}

	client := NewSupabaseClient(config, logger)
	if err := client.Initialize(); err != nil {
		logger.Error("Failed to initialize Supabase client; archival disabled", err)
		return repo
	}

	repo.client = client
	repo.enabled = true
	return repo
}

// Enabled reports whether archival is configured
func (r *SupabaseArchiveRepository) Enabled() bool {
	return r.enabled
}

// Archive uploads one extraction record as a plain-text object
func (r *SupabaseArchiveRepository) Archive(_ context.Context, record domain.ExtractionRecord) error {
	if !r.enabled {
		return nil
	}

	objectPath := fmt.Sprintf("extractions/%s.txt", uuid.New().String())
	_, err := r.client.Client().Storage.UploadFile(r.bucket, objectPath, strings.NewReader(record.Text))
	if err != nil {
		return fmt.Errorf("failed to upload extracted text: %w", err)
	}

	r.logger.Info("Archived extracted text",
		"source_url", record.SourceURL,
		"object_path", objectPath,
		"engine", record.Engine,
		"file_bytes", record.SizeBytes,
		"text_chars", len(record.Text))
	return nil
}
