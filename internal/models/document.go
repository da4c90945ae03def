package models

import (
	"encoding/json"
	"time"
)

type DocumentType string

const (
	DocumentTypeInvoice   DocumentType = "invoice"
	DocumentTypeStatement DocumentType = "statement"
)

// Valid reports whether the discriminator holds one of the two supported values.
func (t DocumentType) Valid() bool {
	return t == DocumentTypeInvoice || t == DocumentTypeStatement
}

// LineItem is one row of an invoice or statement item listing.
type LineItem struct {
	Description string   `json:"description"`
	Quantity    *int     `json:"quantity,omitempty"`
	UnitPrice   *Decimal `json:"unit_price,omitempty"`
	TotalPrice  *Decimal `json:"total_price"`
	GST         *Decimal `json:"gst,omitempty"`
}

// ExtractedRecord is the validated output of one extraction call. The
// discriminator selects which of the two required-field sets applies; a field
// required for one type is never required for the other. Records are not
// mutated after validation.
type ExtractedRecord struct {
	DocumentType DocumentType `json:"document_type"`

	TotalAmount  *Decimal `json:"total_amount"`
	VendorName   string   `json:"vendor_name"`
	CustomerName string   `json:"customer_name"`

	// Invoice fields.
	InvoiceNumber *string  `json:"invoice_number,omitempty"`
	InvoiceDate   *Date    `json:"invoice_date,omitempty"`
	DueDate       *Date    `json:"due_date,omitempty"`
	TaxAmount     *Decimal `json:"tax_amount,omitempty"`
	PONumber      *string  `json:"PO_number,omitempty"`

	// Statement fields.
	StatementDate    *Date   `json:"statement_date,omitempty"`
	Reference        *string `json:"reference,omitempty"`
	StatementDueDate *Date   `json:"statement_due_date,omitempty"`

	// An absent array and an empty array both mean "no items".
	LineItems []LineItem `json:"line_items,omitempty"`
}

// StoredRow is one persisted document as read back from the invoices or
// statements table. Type-specific columns are nil for the other type.
type StoredRow struct {
	ID           int64           `json:"id"`
	DocumentType string          `json:"document_type"`
	VendorName   string          `json:"vendor_name"`
	CustomerName string          `json:"customer_name"`
	TotalAmount  Decimal         `json:"total_amount"`
	Filename     string          `json:"filename"`
	UploadedAt   time.Time       `json:"uploaded_at"`
	LineItems    json.RawMessage `json:"line_items,omitempty"`

	InvoiceNumber *string `json:"invoice_number,omitempty"`
	InvoiceDate   *string `json:"invoice_date,omitempty"`
	StatementDate *string `json:"statement_date,omitempty"`
	Reference     *string `json:"reference,omitempty"`
}

// LineItemCount decodes the stored JSON array just far enough to count it.
func (r *StoredRow) LineItemCount() int {
	if len(r.LineItems) == 0 {
		return 0
	}
	var items []json.RawMessage
	if err := json.Unmarshal(r.LineItems, &items); err != nil {
		return 0
	}
	return len(items)
}
