package service

import "fmt"

// InvalidDocumentError means the uploaded bytes could not be turned into page
// images: corrupt or encrypted PDF, empty document, unrecognized image format.
type InvalidDocumentError struct {
	Reason string
	Err    error
}

func (e *InvalidDocumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid document: %s: %v", e.Reason, e.Err)
	}
	return "invalid document: " + e.Reason
}

func (e *InvalidDocumentError) Unwrap() error { return e.Err }

// Extraction failure reasons. Each maps to a distinct point where the model
// call can produce no usable text.
const (
	ExtractReasonEncode    = "image encoding failed"
	ExtractReasonTransport = "transport failure"
	ExtractReasonStatus    = "non-success status"
	ExtractReasonEmpty     = "empty response"
	ExtractReasonNoContent = "response missing content"
)

// ExtractionError means the model round trip produced no usable text. The
// pipeline never retries internally; retry policy belongs to the caller.
type ExtractionError struct {
	Reason string
	Model  string
	Err    error
}

func (e *ExtractionError) Error() string {
	msg := fmt.Sprintf("extraction failed (%s): %s", e.Model, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// ValidationError means the model's text could not be validated into an
// ExtractedRecord. Field is empty for document-level failures such as
// malformed JSON; Raw carries the offending text for diagnostics.
type ValidationError struct {
	Field string
	Msg   string
	Raw   string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Msg
	}
	return e.Msg
}
