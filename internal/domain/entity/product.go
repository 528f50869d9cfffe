package entity

import "github.com/shopspring/decimal"

func init() {
	// El documento persistido guarda cantidades y precios como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product representa un ítem del almacén (catálogo).
// Quantity solo cambia por movimientos o al guardar la edición del producto.
type Product struct {
	ID           string              `json:"id"`
	Name         string              `json:"nome"`
	Category     string              `json:"categoria"`
	Location     string              `json:"local"`
	Quantity     decimal.Decimal     `json:"quantidade"`
	Unit         string              `json:"unidade"`
	MinimumStock decimal.Decimal     `json:"estoque_minimo"`
	Supplier     string              `json:"fornecedor"`
	UnitPrice    decimal.NullDecimal `json:"preco_unitario"`
	Description  string              `json:"descricao"`
}

// IsLowStock indica si la cantidad disponible está en o por debajo del mínimo.
func (p *Product) IsLowStock() bool {
	return p.Quantity.LessThanOrEqual(p.MinimumStock)
}

// Value devuelve cantidad × precio unitario (0 si no hay precio).
func (p *Product) Value() decimal.Decimal {
	if !p.UnitPrice.Valid {
		return decimal.Zero
	}
	return p.Quantity.Mul(p.UnitPrice.Decimal)
}

// Clone devuelve una copia independiente del producto.
func (p *Product) Clone() *Product {
	c := *p
	return &c
}
