package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// buildDocumentJSONSchema returns the structural contract for model output as
// a generic map: field types, date patterns and the line item shape. Required
// fields are deliberately not expressed here; requiredness depends on the
// discriminator and is enforced with field-specific messages in the validator.
// Unknown extra fields are allowed for forward compatibility.
func buildDocumentJSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"document_type":      nullableProp("string"),
			"invoice_number":     nullableProp("string"),
			"invoice_date":       dateProp(),
			"total_amount":       moneyProp(),
			"vendor_name":        nullableProp("string"),
			"customer_name":      nullableProp("string"),
			"due_date":           dateProp(),
			"tax_amount":         moneyProp(),
			"PO_number":          nullableProp("string"),
			"statement_date":     dateProp(),
			"reference":          nullableProp("string"),
			"statement_due_date": dateProp(),
			"line_items": map[string]any{
				"type": []any{"array", "null"},
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"description": map[string]any{"type": "string"},
						"quantity":    nullableProp("number"),
						"unit_price":  moneyProp(),
						"total_price": moneyProp(),
						"gst":         moneyProp(),
					},
				},
			},
		},
	}
}

func nullableProp(typ string) map[string]any {
	return map[string]any{"type": []any{typ, "null"}}
}

func dateProp() map[string]any {
	return map[string]any{
		"type":    []any{"string", "null"},
		"pattern": `^\d{4}-\d{2}-\d{2}$`,
	}
}

// Money arrives as a JSON number per the prompt, but models drift into
// quoting; both are accepted here and the validator settles precision.
func moneyProp() map[string]any {
	return map[string]any{"type": []any{"number", "string", "null"}}
}

func compileDocumentSchema() (*jsonschema.Schema, error) {
	raw, err := json.Marshal(buildDocumentJSONSchema())
	if err != nil {
		return nil, fmt.Errorf("marshal document schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("document.schema.json", strings.NewReader(string(raw))); err != nil {
		return nil, fmt.Errorf("add document schema resource: %w", err)
	}
	schema, err := compiler.Compile("document.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile document schema: %w", err)
	}
	return schema, nil
}
