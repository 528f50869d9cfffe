package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jhoicas/almoxarifado/internal/application/dto"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
)

func (r *runner) movementCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mov",
		Aliases: []string{"movimentacao"},
		Short:   "Entradas e saídas de estoque",
	}

	var reason, document, user string
	register := &cobra.Command{
		Use:   "registrar <produto_id> <entrada|saida> <quantidade>",
		Short: "Registra uma movimentação e ajusta a quantidade do produto",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := r.container.Movements.RegisterMovementFromRequest(cmd.Context(), dto.RegisterMovementRequest{
				ProductID: args[0],
				Type:      entity.MovementType(args[1]),
				Quantity:  dto.NewNumber(args[2]),
				Reason:    reason,
				Document:  document,
				User:      user,
			})
			if err != nil {
				return err
			}
			r.printf("Movimentação %s registrada. Quantidade atual: %s\n", res.Movement.ID, res.NewQuantity.String())
			return nil
		},
	}
	register.Flags().StringVar(&reason, "motivo", "", "motivo")
	register.Flags().StringVar(&document, "documento", "", "documento de referência")
	register.Flags().StringVar(&user, "usuario", "", "responsável")

	var start, end string
	list := &cobra.Command{
		Use:   "listar",
		Short: "Lista as movimentações de um período",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			rep, err := r.container.Dashboard.GetMovementReport(start, end)
			if err != nil {
				return err
			}
			r.renderMovementRows("Movimentações "+rep.Period, rep.Rows, rep.DateLayout)
			return nil
		},
	}
	list.Flags().StringVar(&start, "inicio", "", "data inicial (AAAA-MM-DD)")
	list.Flags().StringVar(&end, "fim", "", "data final (AAAA-MM-DD)")

	cmd.AddCommand(register, list)
	return cmd
}

func (r *runner) renderMovementRows(title string, rows []dto.MovementReportRow, layout string) {
	t := r.newTable(title)
	t.AppendHeader(table.Row{"ID", "Produto", "Tipo", "Quantidade", "Motivo", "Documento", "Usuário", "Data"})
	for _, row := range rows {
		t.AppendRow(table.Row{
			row.ID, row.ProductName, string(row.Type), row.Quantity.String(),
			row.Reason, row.Document, row.User, formatDate(row.Date, layout),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "", "", "Total", len(rows)})
	t.Render()
}
