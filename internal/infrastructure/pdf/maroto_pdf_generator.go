// Package pdf genera los documentos imprimibles del almoxarifado con Maroto v2:
// reporte de inventario, de bajo stock, de movimientos por período y etiquetas con QR.
//
// Layout de los reportes (A4):
//
//	┌─────────────────────────────────────────────┐
//	│  TÍTULO (centrado)                           │
//	│  Subtítulo / período                         │
//	│  ─────────────────────────────────────────   │
//	│  TABLA: cabecera + una fila por ítem         │
//	│  ─────────────────────────────────────────   │
//	│  Pie: total de ítems + fecha de emisión      │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/almoxarifado/internal/application/dto"
	"github.com/jhoicas/almoxarifado/internal/application/ports"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
)

var (
	_ ports.ReportRenderer = (*MarotoPDFGenerator)(nil)
	_ ports.LabelRenderer  = (*MarotoPDFGenerator)(nil)
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// column define una columna de tabla: título y ancho en la grilla de 12.
type column struct {
	label string
	size  int
	align align.Type
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ReportRenderer y LabelRenderer usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// InventoryReport tabla ID | Nome | Quantidade | Local.
func (g *MarotoPDFGenerator) InventoryReport(_ context.Context, rep dto.InventoryReport) ([]byte, error) {
	cols := []column{
		{"ID", 2, align.Left},
		{"Nome", 5, align.Left},
		{"Quantidade", 2, align.Right},
		{"Local", 3, align.Left},
	}
	rows := make([][]string, 0, len(rep.Products))
	for _, p := range rep.Products {
		rows = append(rows, []string{p.ID, p.Name, quantity(p.Quantity.String(), p.Unit), p.Location})
	}
	return g.table(rep.Title, rep.Subtitle, cols, rows, rep.GeneratedAt.Format("02/01/2006 15:04"))
}

// LowStockReport tabla ID | Nome | Quantidade | Mínimo.
func (g *MarotoPDFGenerator) LowStockReport(_ context.Context, rep dto.InventoryReport) ([]byte, error) {
	cols := []column{
		{"ID", 2, align.Left},
		{"Nome", 6, align.Left},
		{"Quantidade", 2, align.Right},
		{"Mínimo", 2, align.Right},
	}
	rows := make([][]string, 0, len(rep.Products))
	for _, p := range rep.Products {
		rows = append(rows, []string{p.ID, p.Name, p.Quantity.String(), p.MinimumStock.String()})
	}
	return g.table(rep.Title, rep.Subtitle, cols, rows, rep.GeneratedAt.Format("02/01/2006 15:04"))
}

// MovementReport tabla de movimientos del período, fechas con el formato configurado.
func (g *MarotoPDFGenerator) MovementReport(_ context.Context, rep dto.MovementReport) ([]byte, error) {
	cols := []column{
		{"ID", 2, align.Left},
		{"Produto", 2, align.Left},
		{"Tipo", 1, align.Left},
		{"Qtd.", 1, align.Right},
		{"Motivo", 2, align.Left},
		{"Documento", 1, align.Left},
		{"Usuário", 1, align.Left},
		{"Data", 2, align.Right},
	}
	layout := rep.DateLayout
	if layout == "" {
		layout = "02/01/2006"
	}
	rows := make([][]string, 0, len(rep.Rows))
	for _, r := range rep.Rows {
		rows = append(rows, []string{
			r.ID, r.ProductName, string(r.Type), r.Quantity.String(),
			r.Reason, r.Document, r.User, r.Date.Format(layout),
		})
	}
	return g.table(rep.Title, "Movimentações "+rep.Period, cols, rows, rep.GeneratedAt.Format(layout+" 15:04"))
}

// Labels genera copies etiquetas en grilla de 4 columnas: nombre, ID y QR con "<id> - <nome>".
func (g *MarotoPDFGenerator) Labels(_ context.Context, p *entity.Product, copies int) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Etiquetas "+p.ID, true).
		Build()
	m := maroto.New(cfg)

	const perRow = 4
	payload := fmt.Sprintf("%s - %s", p.ID, p.Name)
	for i := 0; i < copies; i += perRow {
		n := perRow
		if copies-i < perRow {
			n = copies - i
		}
		cols := make([]core.Col, 0, perRow)
		for j := 0; j < n; j++ {
			cols = append(cols, labelCol(p, payload))
		}
		for j := n; j < perRow; j++ {
			cols = append(cols, col.New(12/perRow))
		}
		m.AddRows(row.New(42).Add(cols...))
		m.AddRows(line.NewRow(2))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiquetas: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) table(title, subtitle string, cols []column, rows [][]string, issued string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(title+" - "+subtitle, true).
		Build()
	m := maroto.New(cfg)

	m.AddRows(headerRow(title, subtitle))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow(cols))
	for _, r := range rows {
		m.AddRows(tableRow(cols, r))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(len(rows), issued))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título y subtítulo centrados.
func headerRow(title, subtitle string) core.Row {
	return row.New(18).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center, Color: colorPrimary, Top: 1,
			}),
			text.New(subtitle, props.Text{
				Size: 11, Align: align.Center, Top: 9,
			}),
		),
	)
}

func tableHeaderRow(cols []column) core.Row {
	out := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		out = append(out, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(out...)
}

func tableRow(cols []column, values []string) core.Row {
	out := make([]core.Col, 0, len(cols))
	for i, c := range cols {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		out = append(out, col.New(c.size).Add(text.New(v, props.Text{
			Size: 7.5, Align: c.align, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(out...)
}

func footerRow(count int, issued string) core.Row {
	return row.New(8).Add(
		col.New(6).Add(text.New(fmt.Sprintf("Total de itens: %d", count), props.Text{
			Size: 8, Top: 2, Color: colorGray,
		})),
		col.New(6).Add(text.New("Emitido em "+issued, props.Text{
			Size: 8, Top: 2, Align: align.Right, Color: colorGray,
		})),
	)
}

func labelCol(p *entity.Product, payload string) core.Col {
	return col.New(3).Add(
		text.New(p.Name, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1}),
		text.New("ID: "+p.ID, props.Text{Size: 7, Align: align.Center, Top: 5}),
		code.NewQr(payload, props.Rect{Percent: 60, Center: false, Left: 10, Top: 10}),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func quantity(q, unit string) string {
	if unit == "" {
		return q
	}
	return q + " " + unit
}
