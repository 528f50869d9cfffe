package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType tipo de movimiento de estoque.
type MovementType string

// Tipos de movimiento.
const (
	MovementTypeEntrada MovementType = "entrada" // entrada
	MovementTypeSaida   MovementType = "saida"   // salida
)

// Valid indica si el tipo es uno de los conocidos.
func (t MovementType) Valid() bool {
	return t == MovementTypeEntrada || t == MovementTypeSaida
}

// Movement evento de entrada o salida. Una vez registrado no se modifica ni se borra;
// ProductID puede apuntar a un producto ya eliminado.
type Movement struct {
	ID        string          `json:"id"`
	ProductID string          `json:"produto_id"`
	Type      MovementType    `json:"tipo"`
	Quantity  decimal.Decimal `json:"quantidade"`
	Reason    string          `json:"motivo"`
	Document  string          `json:"documento"`
	User      string          `json:"usuario"`
	Date      time.Time       `json:"data"`
}

// SignedQuantity devuelve +Quantity para entradas y -Quantity para salidas.
func (m Movement) SignedQuantity() decimal.Decimal {
	if m.Type == MovementTypeSaida {
		return m.Quantity.Neg()
	}
	return m.Quantity
}
