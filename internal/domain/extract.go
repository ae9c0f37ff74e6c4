package domain

// SuccessEnvelope is the JSON shape returned when extraction succeeds.
// Text is always present, even when the document has no text layer.
type SuccessEnvelope struct {
	OK   bool   `json:"ok"`
	Text string `json:"text"`
}

// ErrorEnvelope is the JSON shape returned for client and server errors.
type ErrorEnvelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// ExtractionRecord describes one completed extraction, used when archiving
// results to storage for the downstream pipeline.
type ExtractionRecord struct {
	SourceURL string `json:"source_url"`
	Text      string `json:"text"`
	SizeBytes int64  `json:"size_bytes"`
	Engine    string `json:"engine"`
}
