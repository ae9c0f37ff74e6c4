package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"pdf-text-extractor/internal/domain"
	apperrors "pdf-text-extractor/pkg/errors"
)

type MockFetcher struct {
	data    []byte
	err     error
	lastURL string
}

func (m *MockFetcher) Fetch(ctx context.Context, fileURL string) ([]byte, error) {
	m.lastURL = fileURL
	if m.err != nil {
		return nil, m.err
	}
	return m.data, nil
}

type MockExtractor struct {
	text string
	err  error
}

func (m *MockExtractor) Name() string { return "mock" }

func (m *MockExtractor) ExtractText(data []byte) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

type MockArchiver struct {
	enabled  bool
	err      error
	archived chan domain.ExtractionRecord
}

func NewMockArchiver(enabled bool) *MockArchiver {
	return &MockArchiver{
		enabled:  enabled,
		archived: make(chan domain.ExtractionRecord, 1),
	}
}

func (m *MockArchiver) Enabled() bool { return m.enabled }

func (m *MockArchiver) Archive(ctx context.Context, record domain.ExtractionRecord) error {
	m.archived <- record
	return m.err
}

func TestExtractService_TrimsWhitespace(t *testing.T) {
	fetcher := &MockFetcher{data: []byte("pdf bytes")}
	extractor := &MockExtractor{text: "\n  Hello World \t\n"}

	service := NewExtractService(fetcher, extractor, NewMockArchiver(false), NewMockServiceLogger())

	text, err := service.ExtractFromURL(context.Background(), "https://example.com/doc.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Hello World" {
		t.Fatalf("expected trimmed text, got %q", text)
	}
	if fetcher.lastURL != "https://example.com/doc.pdf" {
		t.Fatalf("unexpected fetched url: %q", fetcher.lastURL)
	}
}

func TestExtractService_EmptyTextIsNotAnError(t *testing.T) {
	fetcher := &MockFetcher{data: []byte("pdf bytes")}
	extractor := &MockExtractor{text: ""}

	service := NewExtractService(fetcher, extractor, NewMockArchiver(false), NewMockServiceLogger())

	text, err := service.ExtractFromURL(context.Background(), "https://example.com/scanned.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty text, got %q", text)
	}
}

func TestExtractService_FetchErrorPassesThrough(t *testing.T) {
	fetchErr := apperrors.NewUpstreamStatusError(http.StatusNotFound)
	fetcher := &MockFetcher{err: fetchErr}

	service := NewExtractService(fetcher, &MockExtractor{}, NewMockArchiver(false), NewMockServiceLogger())

	_, err := service.ExtractFromURL(context.Background(), "https://example.com/missing.pdf")
	if !errors.Is(err, fetchErr) {
		t.Fatalf("expected the fetch error unchanged, got %v", err)
	}
	if apperrors.GetStatusCode(err) != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", apperrors.GetStatusCode(err))
	}
}

func TestExtractService_ExtractionErrorIsServerError(t *testing.T) {
	fetcher := &MockFetcher{data: []byte("not a pdf")}
	extractor := &MockExtractor{err: errors.New("failed to open PDF: bad header")}

	service := NewExtractService(fetcher, extractor, NewMockArchiver(false), NewMockServiceLogger())

	_, err := service.ExtractFromURL(context.Background(), "https://example.com/file.bin")
	if err == nil {
		t.Fatal("expected extraction error")
	}
	if apperrors.GetStatusCode(err) != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", apperrors.GetStatusCode(err))
	}
	if apperrors.PublicMessage(err) != "failed to open PDF: bad header" {
		t.Fatalf("unexpected public message: %s", apperrors.PublicMessage(err))
	}
}

func TestExtractService_ArchivesOnSuccess(t *testing.T) {
	fetcher := &MockFetcher{data: []byte("pdf bytes")}
	extractor := &MockExtractor{text: "archived text"}
	archiver := NewMockArchiver(true)

	service := NewExtractService(fetcher, extractor, archiver, NewMockServiceLogger())

	text, err := service.ExtractFromURL(context.Background(), "https://example.com/doc.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "archived text" {
		t.Fatalf("unexpected text: %q", text)
	}

	select {
	case record := <-archiver.archived:
		if record.SourceURL != "https://example.com/doc.pdf" {
			t.Fatalf("unexpected archived source url: %q", record.SourceURL)
		}
		if record.Text != "archived text" {
			t.Fatalf("unexpected archived text: %q", record.Text)
		}
		if record.Engine != "mock" {
			t.Fatalf("unexpected archived engine: %q", record.Engine)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected archive to be called")
	}
}

func TestExtractService_ArchiveFailureDoesNotChangeResult(t *testing.T) {
	fetcher := &MockFetcher{data: []byte("pdf bytes")}
	extractor := &MockExtractor{text: "still fine"}
	archiver := NewMockArchiver(true)
	archiver.err = errors.New("bucket unavailable")

	service := NewExtractService(fetcher, extractor, archiver, NewMockServiceLogger())

	text, err := service.ExtractFromURL(context.Background(), "https://example.com/doc.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "still fine" {
		t.Fatalf("unexpected text: %q", text)
	}
	<-archiver.archived
}

func TestExtractService_NoArchiveWhenDisabled(t *testing.T) {
	fetcher := &MockFetcher{data: []byte("pdf bytes")}
	extractor := &MockExtractor{text: "text"}
	archiver := NewMockArchiver(false)

	service := NewExtractService(fetcher, extractor, archiver, NewMockServiceLogger())

	if _, err := service.ExtractFromURL(context.Background(), "https://example.com/doc.pdf"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case <-archiver.archived:
		t.Fatal("expected no archive call when disabled")
	case <-time.After(100 * time.Millisecond):
	}
}
