package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almoxarifado/internal/application/dto"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
	"github.com/jhoicas/almoxarifado/internal/domain/inventory"
)

// Derivaciones puras sobre el documento; se recalculan en cada consulta.

// Totals calcula totalItens, baixoEstoque y valorEstimado (redondeado a 2 decimales).
func Totals(doc entity.Document) dto.DashboardTotalsDTO {
	out := dto.DashboardTotalsDTO{
		TotalItems:     decimal.Zero,
		EstimatedValue: decimal.Zero,
		Currency:       doc.Settings.Currency,
	}
	value := decimal.Zero
	for _, p := range doc.Products {
		out.TotalItems = out.TotalItems.Add(p.Quantity)
		if p.IsLowStock() {
			out.LowStockCount++
		}
		value = value.Add(p.Value())
	}
	if doc.Settings.CalculateValue {
		out.EstimatedValue = value.Round(2)
	}
	return out
}

// LowStock devuelve los productos con quantidade <= estoque_minimo, en orden del Catálogo.
func LowStock(doc entity.Document) []*entity.Product {
	out := make([]*entity.Product, 0)
	for _, p := range doc.Products {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out
}

// MovementsInRange filtra el libro por fecha; ambas fechas (YYYY-MM-DD) son obligatorias.
func MovementsInRange(doc entity.Document, start, end string) ([]entity.Movement, error) {
	r, err := inventory.ParseDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return filterMovements(doc.Movements, r), nil
}

// QuantitySeries pares (nome, quantidade) por producto para el gráfico de barras.
func QuantitySeries(doc entity.Document) []dto.SeriesPoint {
	out := make([]dto.SeriesPoint, 0, len(doc.Products))
	for _, p := range doc.Products {
		out = append(out, dto.SeriesPoint{Name: p.Name, Quantity: p.Quantity})
	}
	return out
}

// MovementRows une los movimientos con el nombre del producto. Si el producto fue
// eliminado el nombre queda vacío.
func MovementRows(doc entity.Document, movements []entity.Movement) []dto.MovementReportRow {
	names := make(map[string]string, len(doc.Products))
	for _, p := range doc.Products {
		names[p.ID] = p.Name
	}
	rows := make([]dto.MovementReportRow, 0, len(movements))
	for _, m := range movements {
		rows = append(rows, dto.MovementReportRow{
			ID:          m.ID,
			ProductID:   m.ProductID,
			ProductName: names[m.ProductID],
			Type:        m.Type,
			Quantity:    m.Quantity,
			Reason:      m.Reason,
			Document:    m.Document,
			User:        m.User,
			Date:        m.Date,
		})
	}
	return rows
}

func filterMovements(movements []entity.Movement, r inventory.DateRange) []entity.Movement {
	out := make([]entity.Movement, 0)
	for _, m := range movements {
		if r.Contains(m.Date) {
			out = append(out, m)
		}
	}
	return out
}
