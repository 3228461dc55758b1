package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Quantity is a numeric item attribute kept exactly as the client sent it.
// Older clients post form values verbatim, so a quantity may arrive as a JSON
// number or as a numeric string; both round-trip unchanged.
type Quantity []byte

// NewQuantity returns a Quantity holding v as a JSON number.
func NewQuantity(v float64) Quantity {
	return Quantity(strconv.FormatFloat(v, 'f', -1, 64))
}

func quantityFromDecimal(d decimal.Decimal) Quantity {
	return Quantity(d.String())
}

// MarshalJSON implements json.Marshaler
func (q Quantity) MarshalJSON() ([]byte, error) {
	if len(q) == 0 {
		return []byte("null"), nil
	}
	return []byte(q), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (q *Quantity) UnmarshalJSON(b []byte) error {
	*q = append(Quantity(nil), b...)
	return nil
}

// IsSet reports whether the attribute was supplied with a non-null value.
func (q Quantity) IsSet() bool {
	s := strings.TrimSpace(string(q))
	return s != "" && s != "null"
}

// Float coerces the quantity to a number. It reports false for absent, null
// or non-numeric values.
func (q Quantity) Float() (float64, bool) {
	s, ok := q.numeric()
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Decimal is Float without binary rounding of the supplied digits.
func (q Quantity) Decimal() (decimal.Decimal, bool) {
	f, ok := q.Float()
	if !ok {
		return decimal.Zero, false
	}
	s, _ := q.numeric()
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NewFromFloat(f), true
	}
	return d, true
}

func (q Quantity) numeric() (string, bool) {
	if !q.IsSet() {
		return "", false
	}
	s := strings.TrimSpace(string(q))
	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(q, &str); err != nil {
			return "", false
		}
		s = strings.TrimSpace(str)
	}
	return s, s != ""
}
