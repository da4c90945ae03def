package models

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// reDecimal admits plain decimal notation with at most two fractional
// digits. Exponent notation and a trailing dot are not money.
var reDecimal = regexp.MustCompile(`^-?\d+(\.\d{1,2})?$`)

// Decimal is a fixed-point monetary amount held as integer cents. Amounts
// pass through the system textually; a float64 never carries a value.
type Decimal struct {
	cents int64
}

// ParseDecimal parses a monetary token. More than two fractional digits is
// an error, not a rounding opportunity.
func ParseDecimal(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	if !reDecimal.MatchString(s) {
		return Decimal{}, fmt.Errorf("invalid decimal %q", s)
	}

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	for len(fracPart) < 2 {
		fracPart += "0"
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Decimal{}, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	// whole is non-negative here; scaling to cents must not wrap int64.
	if whole > (math.MaxInt64-99)/100 {
		return Decimal{}, fmt.Errorf("decimal %q out of range", s)
	}
	frac, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return Decimal{}, fmt.Errorf("invalid decimal %q: %w", s, err)
	}

	cents := whole*100 + frac
	if neg {
		cents = -cents
	}
	return Decimal{cents: cents}, nil
}

func NewDecimalFromCents(cents int64) Decimal {
	return Decimal{cents: cents}
}

func (d Decimal) Cents() int64 { return d.cents }

// Equal compares by value, so "100" and "100.00" are the same amount.
func (d Decimal) Equal(other Decimal) bool { return d.cents == other.cents }

func (d Decimal) Float64() float64 { return float64(d.cents) / 100 }

// String renders the canonical two-decimal form, e.g. "150.00".
func (d Decimal) String() string {
	cents := d.cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// UnmarshalJSON accepts a bare JSON number or a quoted decimal string; the
// raw token is parsed textually so precision is checked, never rounded.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	token := strings.TrimSpace(string(data))
	if token == "null" {
		return nil
	}
	if len(token) >= 2 && token[0] == '"' && token[len(token)-1] == '"' {
		token = token[1 : len(token)-1]
	}
	parsed, err := ParseDecimal(token)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON emits a bare number with two decimal places.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}
