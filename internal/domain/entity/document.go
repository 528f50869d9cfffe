package entity

import (
	"encoding/json"
	"fmt"
)

// Document es la forma persistida y también el formato de backup/restore:
// {"produtos": [...], "movimentacoes": [...], "config": {...}}.
type Document struct {
	Products  []*Product `json:"produtos"`
	Movements []Movement `json:"movimentacoes"`
	Settings  Settings   `json:"config"`
}

// DecodeLenient decodifica un documento sin fallar nunca: cada campo de primer nivel
// que no se pueda leer queda vacío, y la configuración es la base más las claves legibles.
func DecodeLenient(data []byte, base Settings) Document {
	doc := Document{Products: []*Product{}, Movements: []Movement{}, Settings: base}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return doc
	}
	if v, ok := raw["produtos"]; ok {
		var products []*Product
		if err := json.Unmarshal(v, &products); err == nil {
			doc.Products = compactProducts(products)
		}
	}
	if v, ok := raw["movimentacoes"]; ok {
		var movements []Movement
		if err := json.Unmarshal(v, &movements); err == nil && movements != nil {
			doc.Movements = movements
		}
	}
	if v, ok := raw["config"]; ok {
		doc.Settings = OverlaySettingsLenient(base, v)
	}
	return doc
}

// DecodeStrict decodifica un documento importado. Falla si el payload no es un objeto
// o si algún campo presente no tiene la forma esperada.
func DecodeStrict(data []byte, base Settings) (Document, error) {
	doc := Document{Products: []*Product{}, Movements: []Movement{}, Settings: base}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return doc, fmt.Errorf("documento: %w", err)
	}
	if raw == nil {
		return doc, fmt.Errorf("documento: se esperaba un objeto")
	}
	if v, ok := raw["produtos"]; ok {
		var products []*Product
		if err := json.Unmarshal(v, &products); err != nil {
			return doc, fmt.Errorf("produtos: %w", err)
		}
		doc.Products = compactProducts(products)
	}
	if v, ok := raw["movimentacoes"]; ok {
		var movements []Movement
		if err := json.Unmarshal(v, &movements); err != nil {
			return doc, fmt.Errorf("movimentacoes: %w", err)
		}
		if movements != nil {
			doc.Movements = movements
		}
	}
	if v, ok := raw["config"]; ok && string(v) != "null" {
		var overlay map[string]json.RawMessage
		if err := json.Unmarshal(v, &overlay); err != nil {
			return doc, fmt.Errorf("config: %w", err)
		}
		doc.Settings = OverlaySettingsLenient(base, v)
	}
	return doc, nil
}

// OverlaySettingsLenient aplica sobre base cada clave de config que se pueda leer.
func OverlaySettingsLenient(base Settings, data []byte) Settings {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return base
	}
	out := base
	var s string
	var b bool
	if v, ok := raw["formatoData"]; ok && json.Unmarshal(v, &s) == nil && s != "" {
		out.DateFormat = s
	}
	if v, ok := raw["calcularValor"]; ok && json.Unmarshal(v, &b) == nil {
		out.CalculateValue = b
	}
	s = ""
	if v, ok := raw["moeda"]; ok && json.Unmarshal(v, &s) == nil {
		out.Currency = s
	}
	s = ""
	if v, ok := raw["theme"]; ok && json.Unmarshal(v, &s) == nil && (s == ThemeLight || s == ThemeDark) {
		out.Theme = s
	}
	return out
}

func compactProducts(in []*Product) []*Product {
	out := make([]*Product, 0, len(in))
	for _, p := range in {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}
