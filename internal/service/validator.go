package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"finextract/internal/models"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.uber.org/zap"
)

const (
	msgMalformedJSON = "Invalid JSON output from LLM"
	msgBadStructure  = "Invalid data structure in LLM output"
	msgBadDate       = "Date must be in YYYY-MM-DD format"
)

// Validator turns normalized model output into an immutable ExtractedRecord.
// Structural shape is checked against the JSON schema first; requiredness and
// precision rules depend on the discriminator and are enforced field by field
// so failures name the offending field.
type Validator struct {
	schema *jsonschema.Schema
	logger *zap.Logger
}

func NewValidator(logger *zap.Logger) (*Validator, error) {
	schema, err := compileDocumentSchema()
	if err != nil {
		return nil, err
	}
	return &Validator{schema: schema, logger: logger}, nil
}

// Validate decodes and validates one JSON document. Unknown extra fields are
// ignored; missing optional fields stay nil; an empty line_items array and a
// null one both validate to "no items".
func (v *Validator) Validate(jsonText string) (*models.ExtractedRecord, error) {
	dec := json.NewDecoder(strings.NewReader(jsonText))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		v.logger.Error("Failed to parse LLM output as JSON",
			zap.Error(err),
			zap.String("raw", jsonText),
		)
		return nil, &ValidationError{Msg: msgMalformedJSON, Raw: jsonText}
	}

	// Dates are checked ahead of the structural pass so a bad one names its
	// field instead of surfacing as a generic schema failure.
	for _, field := range dateFields {
		if err := checkDate(doc, field); err != nil {
			verr := err.(*ValidationError)
			verr.Raw = jsonText
			return nil, verr
		}
	}

	if err := v.schema.Validate(doc); err != nil {
		v.logger.Error("LLM output failed schema validation",
			zap.Error(err),
			zap.String("raw", jsonText),
		)
		return nil, &ValidationError{Msg: msgBadStructure, Raw: jsonText}
	}

	docType, _ := doc["document_type"].(string)
	if !models.DocumentType(docType).Valid() {
		return nil, &ValidationError{
			Field: "document_type",
			Msg:   `must be "invoice" or "statement"`,
			Raw:   jsonText,
		}
	}

	required := []string{"total_amount", "vendor_name", "customer_name"}
	if models.DocumentType(docType) == models.DocumentTypeInvoice {
		required = append(required, "invoice_number", "invoice_date")
	} else {
		required = append(required, "statement_date", "reference")
	}
	for _, field := range required {
		if !hasValue(doc, field) {
			return nil, &ValidationError{Field: field, Msg: "missing required field", Raw: jsonText}
		}
	}

	if err := v.checkFieldFormats(doc); err != nil {
		verr := err.(*ValidationError)
		verr.Raw = jsonText
		return nil, verr
	}

	var record models.ExtractedRecord
	if err := json.Unmarshal([]byte(jsonText), &record); err != nil {
		v.logger.Error("Failed to decode validated document",
			zap.Error(err),
			zap.String("raw", jsonText),
		)
		return nil, &ValidationError{Msg: msgBadStructure, Raw: jsonText}
	}
	scrubInvalidUTF8(&record)

	return &record, nil
}

// scrubInvalidUTF8 strips byte sequences Postgres would reject from the
// free-text fields. Runs before the record is handed out, so the record stays
// immutable afterwards.
func scrubInvalidUTF8(record *models.ExtractedRecord) {
	record.VendorName = strings.ToValidUTF8(record.VendorName, "")
	record.CustomerName = strings.ToValidUTF8(record.CustomerName, "")
	for i := range record.LineItems {
		record.LineItems[i].Description = strings.ToValidUTF8(record.LineItems[i].Description, "")
	}
}

var (
	dateFields  = []string{"invoice_date", "due_date", "statement_date", "statement_due_date"}
	moneyFields = []string{"total_amount", "tax_amount"}
)

func (v *Validator) checkFieldFormats(doc map[string]any) error {
	for _, field := range moneyFields {
		if err := checkMoney(doc, field); err != nil {
			return err
		}
	}

	items, ok := doc["line_items"].([]any)
	if !ok {
		return nil
	}
	for i, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			return &ValidationError{Field: itemField(i, ""), Msg: "must be an object"}
		}
		if desc, _ := item["description"].(string); strings.TrimSpace(desc) == "" {
			return &ValidationError{Field: itemField(i, "description"), Msg: "missing required field"}
		}
		if !hasValue(item, "total_price") {
			return &ValidationError{Field: itemField(i, "total_price"), Msg: "missing required field"}
		}
		for _, field := range []string{"unit_price", "total_price", "gst"} {
			if err := checkMoneyAt(item, field, itemField(i, field)); err != nil {
				return err
			}
		}
		if qty, present := item["quantity"]; present && qty != nil {
			num, ok := qty.(json.Number)
			if !ok {
				return &ValidationError{Field: itemField(i, "quantity"), Msg: "must be an integer"}
			}
			if _, err := num.Int64(); err != nil {
				return &ValidationError{Field: itemField(i, "quantity"), Msg: "must be an integer"}
			}
		}
	}
	return nil
}

func checkDate(doc map[string]any, field string) error {
	value, present := doc[field]
	if !present || value == nil {
		return nil
	}
	s, ok := value.(string)
	if !ok {
		return &ValidationError{Field: field, Msg: msgBadDate}
	}
	if _, err := models.ParseDate(s); err != nil {
		return &ValidationError{Field: field, Msg: msgBadDate}
	}
	return nil
}

func checkMoney(doc map[string]any, field string) error {
	return checkMoneyAt(doc, field, field)
}

func checkMoneyAt(doc map[string]any, key, label string) error {
	value, present := doc[key]
	if !present || value == nil {
		return nil
	}
	var token string
	switch t := value.(type) {
	case json.Number:
		token = t.String()
	case string:
		token = t
	default:
		return &ValidationError{Field: label, Msg: "must be a decimal number"}
	}
	if _, err := models.ParseDecimal(token); err != nil {
		return &ValidationError{Field: label, Msg: "must have at most 2 decimal places"}
	}
	return nil
}

// hasValue treats absent, null and blank strings as missing.
func hasValue(doc map[string]any, field string) bool {
	value, present := doc[field]
	if !present || value == nil {
		return false
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return true
}

func itemField(index int, name string) string {
	if name == "" {
		return fmt.Sprintf("line_items[%d]", index)
	}
	return fmt.Sprintf("line_items[%d].%s", index, name)
}
