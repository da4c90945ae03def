package models

import (
	"encoding/json"
	"testing"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "No fraction", input: "100", want: "100.00"},
		{name: "One fractional digit", input: "100.5", want: "100.50"},
		{name: "Two fractional digits", input: "150.00", want: "150.00"},
		{name: "Negative", input: "-3.25", want: "-3.25"},
		{name: "Zero", input: "0", want: "0.00"},
		{name: "Surrounding whitespace", input: " 42.10 ", want: "42.10"},
		{name: "Three fractional digits", input: "100.555", wantErr: true},
		{name: "Exponent notation", input: "1e2", wantErr: true},
		{name: "Not a number", input: "abc", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
		{name: "Bare dot", input: "100.", wantErr: true},
		{name: "Overflows when scaled to cents", input: "9223372036854775807", wantErr: true},
		{name: "Negative overflow when scaled", input: "-9223372036854775807.99", wantErr: true},
		{name: "Largest accepted", input: "92233720368547757.99", want: "92233720368547757.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDecimal(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDecimal(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDecimal(%q) returned error: %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseDecimal(%q) = %q, want %q", tt.input, got.String(), tt.want)
			}
		})
	}
}

func TestDecimalEqual(t *testing.T) {
	a, _ := ParseDecimal("100")
	b, _ := ParseDecimal("100.00")
	if !a.Equal(b) {
		t.Errorf("100 and 100.00 should be decimal-equal")
	}
	c, _ := ParseDecimal("100.01")
	if a.Equal(c) {
		t.Errorf("100.00 and 100.01 should differ")
	}
}

func TestDecimalJSON(t *testing.T) {
	var d Decimal
	if err := json.Unmarshal([]byte(`150.00`), &d); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if d.Cents() != 15000 {
		t.Errorf("cents = %d, want 15000", d.Cents())
	}

	if err := json.Unmarshal([]byte(`"87.5"`), &d); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if d.String() != "87.50" {
		t.Errorf("got %q, want 87.50", d.String())
	}

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "87.50" {
		t.Errorf("marshal = %s, want 87.50", out)
	}

	if err := json.Unmarshal([]byte(`1.234`), &d); err == nil {
		t.Errorf("unmarshal of 1.234 should fail")
	}
}
