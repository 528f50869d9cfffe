package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almoxarifado/internal/domain/entity"
)

// DashboardTotalsDTO respuesta de GET /api/dashboard.
type DashboardTotalsDTO struct {
	TotalItems     decimal.Decimal `json:"totalItens"`
	LowStockCount  int             `json:"baixoEstoque"`
	EstimatedValue decimal.Decimal `json:"valorEstimado"` // 0 si calcularValor=false
	Currency       string          `json:"moeda"`
}

// SeriesPoint par (nome, quantidade) para el gráfico de barras.
type SeriesPoint struct {
	Name     string          `json:"nome"`
	Quantity decimal.Decimal `json:"quantidade"`
}

// DashboardDTO tablero completo: totales, alertas y serie.
type DashboardDTO struct {
	Totals   DashboardTotalsDTO `json:"totais"`
	Alerts   []*entity.Product  `json:"alertas"`
	Series   []SeriesPoint      `json:"serie"`
	Notified bool               `json:"notificado"`
}

// InventoryReport reporte de inventario actual o de bajo stock.
type InventoryReport struct {
	Title       string            `json:"titulo"`
	Subtitle    string            `json:"subtitulo"`
	Products    []*entity.Product `json:"items"`
	GeneratedAt time.Time         `json:"gerado_em"`
}
