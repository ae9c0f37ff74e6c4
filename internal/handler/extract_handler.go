// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"pdf-text-extractor/internal/domain"
	apperrors "pdf-text-extractor/pkg/errors"
)

// ExtractHandler handles the PDF text extraction endpoint
type ExtractHandler struct {
	extractService domain.ExtractService
	logger         domain.Logger
}

// NewExtractHandler creates a new extract handler
func NewExtractHandler(extractService domain.ExtractService, logger domain.Logger) *ExtractHandler {
	return &ExtractHandler{
		extractService: extractService,
		logger:         logger,
	}
}

type extractRequest struct {
	FileURL string `json:"fileURL"`
}

// Extract downloads the PDF named by fileURL and returns its embedded text.
// fileURL is read from the query string first, then from the JSON body.
func (h *ExtractHandler) Extract(w http.ResponseWriter, r *http.Request) {
	fileURL := strings.TrimSpace(r.URL.Query().Get("fileURL"))
	if fileURL == "" && r.Body != nil {
		var req extractRequest
		// A malformed or empty body is treated the same as an absent
		// parameter, so the decode error is intentionally ignored.
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			fileURL = strings.TrimSpace(req.FileURL)
		}
	}

	if fileURL == "" {
		h.logger.Warn("Extract request rejected: no fileURL", "method", r.Method)
		appErr := apperrors.NewMissingParameterError()
		writeError(w, appErr.StatusCode, appErr.Message)
		return
	}

	h.logger.Info("Extract request", "method", r.Method, "url", fileURL)

	text, err := h.extractService.ExtractFromURL(r.Context(), fileURL)
	if err != nil {
		statusCode := apperrors.GetStatusCode(err)
		if statusCode >= http.StatusInternalServerError {
			h.logger.Error("Extraction pipeline failed", err, "url", fileURL)
		}
		writeError(w, statusCode, apperrors.PublicMessage(err))
		return
	}

	writeSuccess(w, text)
}
