package service

import (
	"bytes"
	"fmt"
	"strings"

	"pdf-text-extractor/internal/domain"

	"github.com/ledongthuc/pdf"
)

// NativeExtractor extracts text with a pure-Go PDF reader. It needs no
// cgo, which makes it the fallback when the fitz engine is unavailable
// or rejects a document.
type NativeExtractor struct{}

// NewNativeExtractor creates a new pure-Go extractor
func NewNativeExtractor() *NativeExtractor {
	return &NativeExtractor{}
}

// Name returns the engine name
func (e *NativeExtractor) Name() string {
	return "native"
}

// ExtractText extracts plain text from PDF bytes
func (e *NativeExtractor) ExtractText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", domain.ErrEmptyDocument
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}
