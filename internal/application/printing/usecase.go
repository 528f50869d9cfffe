// Package printing genera los reportes imprimibles y las etiquetas con QR.
package printing

import (
	"context"
	"fmt"

	"github.com/jhoicas/almoxarifado/internal/application/analytics"
	"github.com/jhoicas/almoxarifado/internal/application/ports"
	"github.com/jhoicas/almoxarifado/internal/application/usecase"
	"github.com/jhoicas/almoxarifado/internal/domain"
)

// DefaultLabelCopies cantidad de etiquetas por defecto.
const DefaultLabelCopies = 4

// maxLabelCopies tope de etiquetas por impresión.
const maxLabelCopies = 200

// UseCase orquesta derivaciones + renderizadores PDF.
type UseCase struct {
	dashboard *analytics.DashboardUseCase
	products  *usecase.ProductUseCase
	reports   ports.ReportRenderer
	labels    ports.LabelRenderer
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	dashboard *analytics.DashboardUseCase,
	products *usecase.ProductUseCase,
	reports ports.ReportRenderer,
	labels ports.LabelRenderer,
) *UseCase {
	return &UseCase{dashboard: dashboard, products: products, reports: reports, labels: labels}
}

// InventoryPDF reporte del inventario actual.
func (uc *UseCase) InventoryPDF(ctx context.Context) ([]byte, error) {
	return uc.reports.InventoryReport(ctx, uc.dashboard.GetInventoryReport())
}

// LowStockPDF reporte de ítems con bajo stock.
func (uc *UseCase) LowStockPDF(ctx context.Context) ([]byte, error) {
	return uc.reports.LowStockReport(ctx, uc.dashboard.GetLowStockReport())
}

// MovementsPDF reporte de movimientos del período; requiere ambas fechas.
func (uc *UseCase) MovementsPDF(ctx context.Context, start, end string) ([]byte, error) {
	rep, err := uc.dashboard.GetMovementReport(start, end)
	if err != nil {
		return nil, err
	}
	return uc.reports.MovementReport(ctx, *rep)
}

// LabelsPDF etiquetas del producto; copies <= 0 usa DefaultLabelCopies.
func (uc *UseCase) LabelsPDF(ctx context.Context, productID string, copies int) ([]byte, error) {
	if copies <= 0 {
		copies = DefaultLabelCopies
	}
	if copies > maxLabelCopies {
		return nil, fmt.Errorf("%w: máximo %d etiquetas", domain.ErrInvalidInput, maxLabelCopies)
	}
	p, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	return uc.labels.Labels(ctx, p, copies)
}
