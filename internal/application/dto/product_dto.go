package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almoxarifado/internal/domain/entity"
)

// SaveProductRequest entrada para crear o editar un producto (upsert).
// ID vacío = producto nuevo. Los campos numéricos llegan como texto o número y se validan en el caso de uso.
type SaveProductRequest struct {
	ID           string      `json:"id"`
	Name         string      `json:"nome"`
	Category     string      `json:"categoria"`
	Location     string      `json:"local"`
	Quantity     NumberInput `json:"quantidade"`
	Unit         string      `json:"unidade"`
	MinimumStock NumberInput `json:"estoque_minimo"`
	Supplier     string      `json:"fornecedor"`
	UnitPrice    NumberInput `json:"preco_unitario"`
	Description  string      `json:"descricao"`
}

// SaveProductResponse salida del upsert.
type SaveProductResponse struct {
	ID      string          `json:"id"`
	Created bool            `json:"created"`
	Product *entity.Product `json:"produto"`
}

// ProductListResponse lista de productos filtrada.
type ProductListResponse struct {
	Items []*entity.Product `json:"items"`
	Total int               `json:"total"`
}

// AvailableQuantityResponse cantidad disponible de un producto.
type AvailableQuantityResponse struct {
	ProductID string          `json:"produto_id"`
	Quantity  decimal.Decimal `json:"quantidade"`
	Unit      string          `json:"unidade"`
}
