package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almoxarifado/internal/domain/entity"
)

// RegisterMovementRequest body para POST /api/movements.
type RegisterMovementRequest struct {
	ProductID string              `json:"produto_id"`
	Type      entity.MovementType `json:"tipo"`
	Quantity  NumberInput         `json:"quantidade"`
	Reason    string              `json:"motivo"`
	Document  string              `json:"documento"`
	User      string              `json:"usuario"`
}

// RegisterMovementResponse movimiento registrado y cantidad resultante del producto.
type RegisterMovementResponse struct {
	Movement    entity.Movement `json:"movimentacao"`
	NewQuantity decimal.Decimal `json:"quantidade_atual"`
}

// MovementReportRow fila del reporte de movimientos. ProductName queda vacío
// si el producto ya no existe.
type MovementReportRow struct {
	ID          string              `json:"id"`
	ProductID   string              `json:"produto_id"`
	ProductName string              `json:"produto"`
	Type        entity.MovementType `json:"tipo"`
	Quantity    decimal.Decimal     `json:"quantidade"`
	Reason      string              `json:"motivo"`
	Document    string              `json:"documento"`
	User        string              `json:"usuario"`
	Date        time.Time           `json:"data"`
}

// MovementReport reporte de movimientos en un período.
type MovementReport struct {
	Title       string              `json:"titulo"`
	Period      string              `json:"periodo"`
	DateLayout  string              `json:"-"`
	Rows        []MovementReportRow `json:"items"`
	GeneratedAt time.Time           `json:"gerado_em"`
}
