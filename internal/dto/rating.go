package dto

// SubmitRatingRequest carries one user-submitted quality rating. A rating of
// zero means "unset" and is rejected before reaching the store.
type SubmitRatingRequest struct {
	Filename     string `json:"filename"`
	DocumentType string `json:"document_type"`
	Model        string `json:"model"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment,omitempty"`
	DocumentID   *int64 `json:"document_id,omitempty"`
}

type SubmitRatingResponse struct {
	RecordID int64 `json:"record_id"`
}
