package dto

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// NumberInput campo numérico de formulario: acepta número JSON, string numérico
// (con coma o punto decimal), string vacío o null. Raw guarda el texto recibido.
type NumberInput struct {
	Raw   string
	Set   bool
	Value decimal.Decimal
	Err   error
}

// NewNumber construye un NumberInput ya parseado a partir de texto (CLI).
func NewNumber(raw string) NumberInput {
	var n NumberInput
	n.parse(raw)
	return n
}

// NumberOf construye un NumberInput válido.
func NumberOf(d decimal.Decimal) NumberInput {
	return NumberInput{Raw: d.String(), Set: true, Value: d}
}

// UnmarshalJSON implementa json.Unmarshaler.
func (n *NumberInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = NumberInput{}
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n.parse(s)
		return nil
	}
	n.parse(string(b))
	return nil
}

// MarshalJSON implementa json.Marshaler.
func (n NumberInput) MarshalJSON() ([]byte, error) {
	if !n.Set {
		return []byte("null"), nil
	}
	if n.Err != nil {
		return json.Marshal(n.Raw)
	}
	return []byte(n.Value.String()), nil
}

func (n *NumberInput) parse(raw string) {
	*n = NumberInput{Raw: raw}
	s := strings.TrimSpace(raw)
	if s == "" {
		return
	}
	n.Set = true
	n.Value, n.Err = decimal.NewFromString(strings.Replace(s, ",", ".", 1))
}
