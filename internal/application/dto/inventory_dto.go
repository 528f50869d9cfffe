package dto

import "github.com/shopspring/decimal"

// ReplenishmentSuggestionDTO sugerencia de reposición para un producto en alerta.
type ReplenishmentSuggestionDTO struct {
	ProductID          string              `json:"produto_id"`
	ProductName        string              `json:"nome"`
	Supplier           string              `json:"fornecedor"`
	CurrentStock       decimal.Decimal     `json:"quantidade"`
	MinimumStock       decimal.Decimal     `json:"estoque_minimo"`
	IdealStock         decimal.Decimal     `json:"estoque_ideal"`   // mínimo × 1,5
	SuggestedOrderQty  decimal.Decimal     `json:"sugestao_compra"` // ideal - atual, nunca negativo
	EstimatedOrderCost decimal.NullDecimal `json:"custo_estimado"`  // null sin preço
	ConsumedLast90Days decimal.Decimal     `json:"consumo_90d"`     // saídas recientes
	Priority           int                 `json:"prioridade"`      // 1 = más urgente
}
