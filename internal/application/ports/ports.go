package ports

import (
	"context"

	"github.com/jhoicas/almoxarifado/internal/application/dto"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
)

// ProductExporter envía la lista de productos a un destino externo (planilla).
// Siguiendo DIP, la aplicación solo conoce este contrato.
type ProductExporter interface {
	ExportProducts(ctx context.Context, products []*entity.Product) error
}

// NotificationLevel severidad de una notificación al usuario.
type NotificationLevel string

// Niveles de notificación.
const (
	NotifySuccess NotificationLevel = "success"
	NotifyInfo    NotificationLevel = "info"
	NotifyError   NotificationLevel = "error"
)

// Notifier muestra un aviso transitorio al usuario.
type Notifier interface {
	Notify(level NotificationLevel, message string)
}

// ReportRenderer genera los reportes imprimibles.
type ReportRenderer interface {
	InventoryReport(ctx context.Context, rep dto.InventoryReport) ([]byte, error)
	LowStockReport(ctx context.Context, rep dto.InventoryReport) ([]byte, error)
	MovementReport(ctx context.Context, rep dto.MovementReport) ([]byte, error)
}

// LabelRenderer genera etiquetas con QR para un producto.
type LabelRenderer interface {
	Labels(ctx context.Context, product *entity.Product, copies int) ([]byte, error)
}
