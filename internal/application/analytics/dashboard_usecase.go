// Package analytics contiene la capa de derivación: tablero, alertas de bajo stock,
// serie para el gráfico y reportes de movimientos por período.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/almoxarifado/internal/application/dto"
	"github.com/jhoicas/almoxarifado/internal/application/ports"
	"github.com/jhoicas/almoxarifado/internal/application/state"
	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
	"github.com/jhoicas/almoxarifado/internal/domain/inventory"
	"github.com/jhoicas/almoxarifado/internal/domain/repository"
)

// lowStockNotifyEvery intervalo mínimo entre avisos de bajo stock.
const lowStockNotifyEvery = 24 * time.Hour

// DashboardUseCase arma el tablero y los reportes a partir del estado actual.
// No cachea nada: cada llamada recalcula sobre una copia del documento.
type DashboardUseCase struct {
	store    *state.Store
	notifier ports.Notifier
	log      zerolog.Logger
	title    string
}

// NewDashboardUseCase construye el caso de uso. notifier puede ser nil.
func NewDashboardUseCase(store *state.Store, notifier ports.Notifier, title string, log zerolog.Logger) *DashboardUseCase {
	return &DashboardUseCase{store: store, notifier: notifier, title: title, log: log}
}

// GetTotals devuelve los totales del tablero.
func (uc *DashboardUseCase) GetTotals() dto.DashboardTotalsDTO {
	return Totals(uc.store.Snapshot())
}

// GetLowStock devuelve las alertas de bajo stock.
func (uc *DashboardUseCase) GetLowStock() []*entity.Product {
	return LowStock(uc.store.Snapshot())
}

// GetSeries devuelve la serie (nome, quantidade).
func (uc *DashboardUseCase) GetSeries() []dto.SeriesPoint {
	return QuantitySeries(uc.store.Snapshot())
}

// GetSummary arma el tablero completo y, si hay alertas, avisa al usuario como máximo
// una vez cada 24 horas.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardDTO, error) {
	doc := uc.store.Snapshot()
	out := &dto.DashboardDTO{
		Totals: Totals(doc),
		Alerts: LowStock(doc),
		Series: QuantitySeries(doc),
	}
	if len(out.Alerts) > 0 {
		notified, err := uc.notifyLowStock(ctx, out.Alerts)
		if err != nil {
			uc.log.Warn().Err(err).Msg("aviso de bajo stock")
		}
		out.Notified = notified
	}
	return out, nil
}

// GetMovementReport devuelve los movimientos del período con el nombre de cada producto.
func (uc *DashboardUseCase) GetMovementReport(start, end string) (*dto.MovementReport, error) {
	r, err := inventory.ParseDateRange(start, end)
	if err != nil {
		return nil, err
	}
	doc := uc.store.Snapshot()
	layout := doc.Settings.Layout()
	return &dto.MovementReport{
		Title:       uc.title,
		Period:      r.Label(layout),
		DateLayout:  layout,
		Rows:        MovementRows(doc, filterMovements(doc.Movements, r)),
		GeneratedAt: uc.store.Now(),
	}, nil
}

// GetInventoryReport reporte del inventario actual.
func (uc *DashboardUseCase) GetInventoryReport() dto.InventoryReport {
	doc := uc.store.Snapshot()
	return dto.InventoryReport{
		Title:       uc.title,
		Subtitle:    "Inventário atual",
		Products:    doc.Products,
		GeneratedAt: uc.store.Now(),
	}
}

// GetLowStockReport reporte de los ítems con bajo stock.
func (uc *DashboardUseCase) GetLowStockReport() dto.InventoryReport {
	doc := uc.store.Snapshot()
	return dto.InventoryReport{
		Title:       uc.title,
		Subtitle:    "Itens com baixo estoque",
		Products:    LowStock(doc),
		GeneratedAt: uc.store.Now(),
	}
}

func (uc *DashboardUseCase) notifyLowStock(ctx context.Context, alerts []*entity.Product) (bool, error) {
	if uc.notifier == nil {
		return false, nil
	}
	kv := uc.store.KV()
	now := uc.store.Now()

	raw, err := kv.Get(ctx, repository.KeyLastLowStockNotified)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return false, fmt.Errorf("leer última notificación: %w", err)
	}
	if err == nil {
		if last, perr := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64); perr == nil &&
			now.Sub(time.UnixMilli(last)) <= lowStockNotifyEvery {
			return false, nil
		}
	}

	names := make([]string, 0, len(alerts))
	for _, p := range alerts {
		names = append(names, p.Name)
	}
	uc.notifier.Notify(ports.NotifyError, fmt.Sprintf(
		"Alerta: %d produto(s) com estoque baixo - %s", len(alerts), strings.Join(names, ", ")))

	stamp := strconv.FormatInt(now.UnixMilli(), 10)
	if err := kv.Put(ctx, repository.KeyLastLowStockNotified, []byte(stamp)); err != nil {
		return true, fmt.Errorf("guardar última notificación: %w", err)
	}
	return true, nil
}
