package dto

import (
	"encoding/json"

	"finextract/internal/models"
)

// SaveDocumentRequest persists a previously extracted record. The record is
// re-validated before it touches storage, so a failed save can always be
// retried with the same payload.
type SaveDocumentRequest struct {
	Filename string          `json:"filename"`
	Record   json.RawMessage `json:"record"`
}

type SaveDocumentResponse struct {
	Table    string `json:"table"`
	RecordID int64  `json:"record_id"`
}

type RecentDocumentsResponse struct {
	Invoices   []*models.StoredRow `json:"invoices"`
	Statements []*models.StoredRow `json:"statements"`
}

// ModelInfo describes one entry of the curated extraction model catalog.
type ModelInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Badge       string `json:"badge"`
}
