package repository

import (
	"encoding/json"
	"time"

	"finextract/internal/models"
)

// Per-table column allow-lists. Projection onto a table keeps exactly these
// columns and silently drops everything else, firewalling the validated
// record shape from the storage shape as the two evolve independently.
var (
	invoiceColumns = []string{
		"document_type", "invoice_number", "invoice_date", "total_amount",
		"vendor_name", "customer_name", "due_date", "tax_amount",
		"PO_number", "reference", "line_items", "uploaded_at", "filename",
	}
	statementColumns = []string{
		"document_type", "statement_date", "total_amount",
		"vendor_name", "customer_name", "reference", "statement_due_date",
		"PO_number", "line_items", "uploaded_at", "filename",
	}
)

func tableFor(docType models.DocumentType) (string, []string) {
	if docType == models.DocumentTypeStatement {
		return "statements", statementColumns
	}
	return "invoices", invoiceColumns
}

// projectRecord maps a validated record onto the column set of its target
// table. Monetary and date values stay in their exact textual form; floats
// never appear. uploaded_at and filename are storage metadata stamped here,
// not extraction output.
func projectRecord(record *models.ExtractedRecord, filename string, uploadedAt time.Time) (string, map[string]interface{}, error) {
	table, allowed := tableFor(record.DocumentType)

	fields := map[string]interface{}{
		"document_type": string(record.DocumentType),
		"vendor_name":   record.VendorName,
		"customer_name": record.CustomerName,
	}
	if record.TotalAmount != nil {
		fields["total_amount"] = record.TotalAmount.String()
	}
	putString(fields, "invoice_number", record.InvoiceNumber)
	putString(fields, "PO_number", record.PONumber)
	putString(fields, "reference", record.Reference)
	putDate(fields, "invoice_date", record.InvoiceDate)
	putDate(fields, "due_date", record.DueDate)
	putDate(fields, "statement_date", record.StatementDate)
	putDate(fields, "statement_due_date", record.StatementDueDate)
	if record.TaxAmount != nil {
		fields["tax_amount"] = record.TaxAmount.String()
	}

	// Absent and empty item lists store identically.
	items := record.LineItems
	if items == nil {
		items = []models.LineItem{}
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return "", nil, err
	}
	fields["line_items"] = itemsJSON

	fields["uploaded_at"] = uploadedAt
	fields["filename"] = filename

	row := make(map[string]interface{}, len(allowed))
	for _, column := range allowed {
		if value, ok := fields[column]; ok {
			row[column] = value
		}
	}
	return table, row, nil
}

func putString(fields map[string]interface{}, column string, value *string) {
	if value != nil {
		fields[column] = *value
	}
}

func putDate(fields map[string]interface{}, column string, value *models.Date) {
	if value != nil {
		fields[column] = value.String()
	}
}
