package inventory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almoxarifado/internal/application/dto"
	"github.com/jhoicas/almoxarifado/internal/application/state"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
)

// idealStockFactor estoque ideal = mínimo × 1,5.
var idealStockFactor = decimal.NewFromFloat(1.5)

// ReplenishmentUseCase genera la lista de reposición a partir de los productos en alerta
// y del consumo (salidas) de los últimos 90 días.
type ReplenishmentUseCase struct {
	store *state.Store
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(store *state.Store) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{store: store}
}

// GenerateReplenishmentList devuelve los productos con quantidade <= estoque_minimo con la
// cantidad sugerida de compra, ordenados por consumo reciente y luego por déficit.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList() []dto.ReplenishmentSuggestionDTO {
	doc := uc.store.Snapshot()
	return BuildReplenishmentList(doc, uc.store.Now())
}

// BuildReplenishmentList es la versión pura de GenerateReplenishmentList.
func BuildReplenishmentList(doc entity.Document, now time.Time) []dto.ReplenishmentSuggestionDTO {
	since := now.AddDate(0, 0, -90)
	consumed := make(map[string]decimal.Decimal)
	for _, m := range doc.Movements {
		if m.Type == entity.MovementTypeSaida && !m.Date.Before(since) {
			consumed[m.ProductID] = consumed[m.ProductID].Add(m.Quantity)
		}
	}

	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0)
	for _, p := range doc.Products {
		if !p.IsLowStock() {
			continue
		}
		ideal := p.MinimumStock.Mul(idealStockFactor)
		suggested := ideal.Sub(p.Quantity)
		if suggested.LessThanOrEqual(decimal.Zero) {
			suggested = decimal.Zero
		}
		var cost decimal.NullDecimal
		if p.UnitPrice.Valid {
			cost = decimal.NewNullDecimal(suggested.Mul(p.UnitPrice.Decimal).Round(2))
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ProductID:          p.ID,
			ProductName:        p.Name,
			Supplier:           p.Supplier,
			CurrentStock:       p.Quantity,
			MinimumStock:       p.MinimumStock,
			IdealStock:         ideal,
			SuggestedOrderQty:  suggested,
			EstimatedOrderCost: cost,
			ConsumedLast90Days: consumed[p.ID],
		})
	}

	// Primero mayor consumo, luego mayor déficit bajo el mínimo.
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if !a.ConsumedLast90Days.Equal(b.ConsumedLast90Days) {
			return a.ConsumedLast90Days.GreaterThan(b.ConsumedLast90Days)
		}
		defA := a.MinimumStock.Sub(a.CurrentStock)
		defB := b.MinimumStock.Sub(b.CurrentStock)
		return defA.GreaterThan(defB)
	})

	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions
}
