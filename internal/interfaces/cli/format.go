package cli

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almoxarifado/internal/domain/entity"
)

func (r *runner) newTable(title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Title.Align = text.AlignCenter
	if title != "" {
		t.SetTitle(title)
	}
	return t
}

func (r *runner) renderProducts(title string, products []*entity.Product) {
	t := r.newTable(title)
	t.AppendHeader(table.Row{"ID", "Nome", "Categoria", "Local", "Quantidade", "Mínimo", "Status"})
	for _, p := range products {
		status := "OK"
		if p.IsLowStock() {
			status = "BAIXO"
		}
		t.AppendRow(table.Row{p.ID, p.Name, p.Category, p.Location, quantity(p.Quantity, p.Unit), p.MinimumStock.String(), status})
	}
	t.AppendFooter(table.Row{"", "", "", "Total", len(products)})
	t.Render()
}

func quantity(q decimal.Decimal, unit string) string {
	if unit == "" {
		return q.String()
	}
	return q.String() + " " + unit
}

func money(currency string, v decimal.Decimal) string {
	return currency + " " + v.StringFixed(2)
}

func formatDate(t time.Time, layout string) string {
	return t.Local().Format(layout + " 15:04")
}
