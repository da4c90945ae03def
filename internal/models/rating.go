package models

import "time"

// RatingRecord is one user-submitted quality rating for an extraction,
// keyed by filename and model rather than by extraction result. Multiple
// ratings per document are allowed; records are never updated.
type RatingRecord struct {
	ID           int64     `json:"id"`
	Filename     string    `json:"filename"`
	DocumentType string    `json:"document_type"`
	Model        string    `json:"model"`
	Rating       int       `json:"rating"`
	Comment      *string   `json:"comment,omitempty"`
	DocumentID   *int64    `json:"document_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
