package service

import (
	"fmt"
	"strings"

	"pdf-text-extractor/internal/domain"

	"github.com/gen2brain/go-fitz"
)

// FitzExtractor extracts text using MuPDF via go-fitz
type FitzExtractor struct {
	logger domain.Logger
}

// NewFitzExtractor creates a new fitz-backed extractor
func NewFitzExtractor(logger domain.Logger) *FitzExtractor {
	return &FitzExtractor{
		logger: logger,
	}
}

// Name returns the engine name
func (e *FitzExtractor) Name() string {
	return "fitz"
}

// ExtractText extracts plain text from PDF bytes, page by page. Pages that
// fail to render are skipped with a warning rather than failing the whole
// document.
func (e *FitzExtractor) ExtractText(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	var pages []string

	for pageNum := 0; pageNum < numPages; pageNum++ {
		e.logger.Debug("Extracting page", "page", pageNum+1, "total", numPages)

		text, err := doc.Text(pageNum)
		if err != nil {
			e.logger.Warn("Failed to extract text from page", "page", pageNum+1, "total", numPages, "error", err)
			continue
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n\n"), nil
}
