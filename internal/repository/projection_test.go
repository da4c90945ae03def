package repository

import (
	"encoding/json"
	"testing"
	"time"

	"finextract/internal/models"
)

func strPtr(s string) *string { return &s }

func decPtr(t *testing.T, s string) *models.Decimal {
	t.Helper()
	d, err := models.ParseDecimal(s)
	if err != nil {
		t.Fatalf("ParseDecimal(%q): %v", s, err)
	}
	return &d
}

func datePtr(t *testing.T, s string) *models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return &d
}

func TestProjectRecordInvoice(t *testing.T) {
	uploadedAt := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	qty := 2
	record := &models.ExtractedRecord{
		DocumentType:  models.DocumentTypeInvoice,
		InvoiceNumber: strPtr("INV-1"),
		InvoiceDate:   datePtr(t, "2024-01-15"),
		TotalAmount:   decPtr(t, "150.00"),
		VendorName:    "Acme",
		CustomerName:  "Bob",
		TaxAmount:     decPtr(t, "15.00"),
		PONumber:      strPtr("PO-9"),
		LineItems: []models.LineItem{
			{Description: "Widget", Quantity: &qty, UnitPrice: decPtr(t, "75.00"), TotalPrice: decPtr(t, "150.00")},
		},
	}

	table, row, err := projectRecord(record, "inv.pdf", uploadedAt)
	if err != nil {
		t.Fatalf("projectRecord: %v", err)
	}
	if table != "invoices" {
		t.Errorf("table = %q, want invoices", table)
	}
	if row["invoice_number"] != "INV-1" {
		t.Errorf("invoice_number = %v", row["invoice_number"])
	}
	if row["invoice_date"] != "2024-01-15" {
		t.Errorf("invoice_date = %v", row["invoice_date"])
	}
	if row["filename"] != "inv.pdf" {
		t.Errorf("filename = %v", row["filename"])
	}
	if row["uploaded_at"] != uploadedAt {
		t.Errorf("uploaded_at = %v", row["uploaded_at"])
	}

	// The amount round-trips through its textual form without drift.
	parsed, err := models.ParseDecimal(row["total_amount"].(string))
	if err != nil {
		t.Fatalf("re-parse total_amount: %v", err)
	}
	if !parsed.Equal(*record.TotalAmount) {
		t.Errorf("total_amount %v changed in projection", row["total_amount"])
	}

	var items []models.LineItem
	if err := json.Unmarshal(row["line_items"].([]byte), &items); err != nil {
		t.Fatalf("decode line_items: %v", err)
	}
	if len(items) != 1 || items[0].Description != "Widget" {
		t.Errorf("line_items = %+v", items)
	}
}

func TestProjectRecordStatement(t *testing.T) {
	record := &models.ExtractedRecord{
		DocumentType:  models.DocumentTypeStatement,
		StatementDate: datePtr(t, "2024-03-01"),
		Reference:     strPtr("ST-1"),
		TotalAmount:   decPtr(t, "10.00"),
		VendorName:    "Acme",
		CustomerName:  "Bob",
	}

	table, row, err := projectRecord(record, "st.pdf", time.Now())
	if err != nil {
		t.Fatalf("projectRecord: %v", err)
	}
	if table != "statements" {
		t.Errorf("table = %q, want statements", table)
	}
	if row["statement_date"] != "2024-03-01" {
		t.Errorf("statement_date = %v", row["statement_date"])
	}
	if row["reference"] != "ST-1" {
		t.Errorf("reference = %v", row["reference"])
	}
}

// A field that only exists on the other table must not leak through the
// allow-list, whatever the record carries.
func TestProjectRecordDropsForeignColumns(t *testing.T) {
	record := &models.ExtractedRecord{
		DocumentType:     models.DocumentTypeInvoice,
		InvoiceNumber:    strPtr("INV-1"),
		InvoiceDate:      datePtr(t, "2024-01-15"),
		TotalAmount:      decPtr(t, "10.00"),
		VendorName:       "Acme",
		CustomerName:     "Bob",
		StatementDate:    datePtr(t, "2024-03-01"),
		StatementDueDate: datePtr(t, "2024-03-31"),
	}

	_, row, err := projectRecord(record, "inv.pdf", time.Now())
	if err != nil {
		t.Fatalf("projectRecord: %v", err)
	}
	if _, ok := row["statement_date"]; ok {
		t.Error("statement_date leaked into an invoice row")
	}
	if _, ok := row["statement_due_date"]; ok {
		t.Error("statement_due_date leaked into an invoice row")
	}

	record.DocumentType = models.DocumentTypeStatement
	_, row, err = projectRecord(record, "st.pdf", time.Now())
	if err != nil {
		t.Fatalf("projectRecord: %v", err)
	}
	if _, ok := row["invoice_number"]; ok {
		t.Error("invoice_number leaked into a statement row")
	}
	if _, ok := row["invoice_date"]; ok {
		t.Error("invoice_date leaked into a statement row")
	}
}

func TestProjectRecordOmitsAbsentOptionals(t *testing.T) {
	record := &models.ExtractedRecord{
		DocumentType:  models.DocumentTypeInvoice,
		InvoiceNumber: strPtr("INV-1"),
		InvoiceDate:   datePtr(t, "2024-01-15"),
		TotalAmount:   decPtr(t, "10.00"),
		VendorName:    "Acme",
		CustomerName:  "Bob",
	}

	_, row, err := projectRecord(record, "inv.pdf", time.Now())
	if err != nil {
		t.Fatalf("projectRecord: %v", err)
	}
	for _, column := range []string{"due_date", "tax_amount", "PO_number", "reference"} {
		if _, ok := row[column]; ok {
			t.Errorf("absent optional %s should not appear in the row", column)
		}
	}

	// No items projects as an empty JSON array, same as an explicit empty list.
	if string(row["line_items"].([]byte)) != "[]" {
		t.Errorf("line_items = %s, want []", row["line_items"])
	}
}
