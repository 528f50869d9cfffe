package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almoxarifado/internal/application/dto"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
	"github.com/jhoicas/almoxarifado/internal/infrastructure/pdf"
)

var products = []*entity.Product{
	{ID: "P001", Name: "Luva", Quantity: decimal.NewFromInt(5), Unit: "par", MinimumStock: decimal.NewFromInt(2), Location: "A1"},
	{ID: "P002", Name: "Balde", Quantity: decimal.Zero, MinimumStock: decimal.NewFromInt(1)},
}

func isPDF(t *testing.T, b []byte) {
	t.Helper()
	require.NotEmpty(t, b)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "la salida debe ser un PDF")
}

func TestInventoryAndLowStockReports(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator()
	rep := dto.InventoryReport{Title: "Almoxarifado", Subtitle: "Inventário atual", Products: products, GeneratedAt: time.Now()}

	out, err := g.InventoryReport(context.Background(), rep)
	require.NoError(t, err)
	isPDF(t, out)

	out, err = g.LowStockReport(context.Background(), rep)
	require.NoError(t, err)
	isPDF(t, out)
}

func TestMovementReport(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator()
	rep := dto.MovementReport{
		Title:      "Almoxarifado",
		Period:     "01/06/2024 a 05/06/2024",
		DateLayout: "02/01/2006",
		Rows: []dto.MovementReportRow{
			{ID: "M1", ProductID: "P001", ProductName: "Luva", Type: entity.MovementTypeEntrada, Quantity: decimal.NewFromInt(5), Date: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)},
			{ID: "M2", ProductID: "P999", Type: entity.MovementTypeSaida, Quantity: decimal.NewFromInt(1), Date: time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)},
		},
		GeneratedAt: time.Now(),
	}

	out, err := g.MovementReport(context.Background(), rep)
	require.NoError(t, err)
	isPDF(t, out)
}

func TestLabels(t *testing.T) {
	out, err := pdf.NewMarotoPDFGenerator().Labels(context.Background(), products[0], 6)
	require.NoError(t, err)
	isPDF(t, out)
}
