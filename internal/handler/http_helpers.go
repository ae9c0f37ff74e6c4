package handler

import (
	"encoding/json"
	"net/http"

	"pdf-text-extractor/internal/domain"
)

// writeJSON writes any payload as a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeSuccess writes the success envelope with the extracted text
func writeSuccess(w http.ResponseWriter, text string) {
	writeJSON(w, http.StatusOK, domain.SuccessEnvelope{OK: true, Text: text})
}

// writeError writes the error envelope
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, domain.ErrorEnvelope{OK: false, Error: message})
}
