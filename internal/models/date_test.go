package models

import (
	"encoding/json"
	"testing"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "Valid date", input: "2024-01-15"},
		{name: "Leap day in leap year", input: "2024-02-29"},
		{name: "Leap day in common year", input: "2023-02-29", wantErr: true},
		{name: "Month out of range", input: "2024-13-01", wantErr: true},
		{name: "Day out of range", input: "2024-02-30", wantErr: true},
		{name: "Wrong layout", input: "15/01/2024", wantErr: true},
		{name: "Datetime not accepted", input: "2024-01-15T00:00:00Z", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) returned error: %v", tt.input, err)
			}
			if got.String() != tt.input {
				t.Errorf("round trip = %q, want %q", got.String(), tt.input)
			}
		})
	}
}

func TestDateJSON(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2024-06-01"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"2024-06-01"` {
		t.Errorf("marshal = %s, want \"2024-06-01\"", out)
	}

	if err := json.Unmarshal([]byte(`1718000000`), &d); err == nil {
		t.Errorf("numeric date should fail")
	}
}
