package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jhoicas/almoxarifado/internal/application/dto"
)

func (r *runner) dashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Totais, alertas e quantidades por produto",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.renderDashboard(cmd)
		},
	}
}

func (r *runner) alertsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "alertas",
		Short: "Produtos com estoque baixo",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			alerts := r.container.Dashboard.GetLowStock()
			if len(alerts) == 0 {
				r.printf("Nenhum produto com estoque baixo.\n")
				return nil
			}
			r.renderProducts("Estoque baixo", alerts)
			return nil
		},
	}
}

func (r *runner) renderDashboard(cmd *cobra.Command) error {
	summary, err := r.container.Dashboard.GetSummary(cmd.Context())
	if err != nil {
		return err
	}
	r.renderTotals(summary.Totals)
	r.renderSeries(summary.Series)
	if len(summary.Alerts) > 0 {
		r.renderProducts("Alertas", summary.Alerts)
	}
	if summary.Notified {
		r.printf("Aviso de estoque baixo emitido.\n")
	}
	return nil
}

func (r *runner) renderTotals(totals dto.DashboardTotalsDTO) {
	t := r.newTable("Dashboard")
	t.AppendRows([]table.Row{
		{"Total de itens", totals.TotalItems.String()},
		{"Estoque baixo", totals.LowStockCount},
		{"Valor estimado", money(totals.Currency, totals.EstimatedValue)},
	})
	t.Render()
}

func (r *runner) renderSeries(series []dto.SeriesPoint) {
	t := r.newTable("Quantidade por produto")
	t.AppendHeader(table.Row{"Produto", "Quantidade"})
	for _, p := range series {
		t.AppendRow(table.Row{p.Name, p.Quantity.String()})
	}
	t.Render()
}
