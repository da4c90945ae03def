package service

// systemInstruction is the fixed system turn sent with every extraction
// request. The schema contract itself lives in extractPrompt.
const systemInstruction = "You are a helpful assistant that extracts information from documents. " +
	"Always respond with valid JSON that matches the required schema. " +
	"Include all required fields and format dates as YYYY-MM-DD."

// extractPrompt describes the two supported document shapes field by field.
// The field names here must stay in lockstep with models.ExtractedRecord and
// the JSON schema in schema.go.
const extractPrompt = `
You are a specialized invoice/statement data extraction assistant. Analyze the provided invoice image. Determine if it is an invoice or a statement and then extract the following fields:

### For Invoices:
- Document Type (required, must be "invoice")
- Invoice Number (required)
- Invoice Date (required, in YYYY-MM-DD format)
- Total Amount (required, in numeric format)
- Vendor Name (required)
- Customer Name (required)
- Due Date (optional, in YYYY-MM-DD format)
- Tax Amount (optional, in numeric format)
- PO Number (optional, Purchase Order number)
- Line Items (optional, list of items with description, quantity, unit price, total price, and GST amount if applicable)

### For Statements:
- Document Type (required, must be "statement")
- Statement Date (required, in YYYY-MM-DD format)
- Reference (required)
- Statement Due Date (optional, in YYYY-MM-DD format)
- Total Amount (required, in numeric format)
- Vendor Name (required)
- Customer Name (required)
- Line Items (optional, list of items with description, quantity, unit price, total price, and GST amount if applicable)

Return ONLY a valid JSON object with the following structure:
{
    "document_type": "invoice" | "statement",
    "invoice_number": string | null,
    "invoice_date": "YYYY-MM-DD" | null,
    "total_amount": number,
    "vendor_name": string,
    "customer_name": string,
    "due_date": "YYYY-MM-DD" | null,
    "tax_amount": number | null,
    "PO_number": string | null,
    "statement_date": "YYYY-MM-DD" | null,
    "reference": string | null,
    "statement_due_date": "YYYY-MM-DD" | null,
    "line_items": [
        {
            "description": string,
            "quantity": number | null,
            "unit_price": number | null,
            "total_price": number,
            "gst": number | null
        }
    ] | null
}

Ensure all numeric values are numbers, not strings. If any optional field is missing or unclear, set it to null.
`
