package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/almoxarifado/internal/application/printing"
)

func (r *runner) reportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relatorio",
		Short: "Gera relatórios em PDF",
	}

	var out string
	cmd.PersistentFlags().StringVarP(&out, "saida", "o", "", "arquivo de saída")

	inventory := &cobra.Command{
		Use:   "inventario",
		Short: "Inventário atual",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pdf, err := r.container.Printing.InventoryPDF(cmd.Context())
			if err != nil {
				return err
			}
			return r.writePDF(orDefault(out, "inventario.pdf"), pdf)
		},
	}

	lowStock := &cobra.Command{
		Use:   "baixo-estoque",
		Short: "Itens com estoque baixo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pdf, err := r.container.Printing.LowStockPDF(cmd.Context())
			if err != nil {
				return err
			}
			return r.writePDF(orDefault(out, "baixo-estoque.pdf"), pdf)
		},
	}

	var start, end string
	movements := &cobra.Command{
		Use:   "movimentacoes",
		Short: "Movimentações de um período",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pdf, err := r.container.Printing.MovementsPDF(cmd.Context(), start, end)
			if err != nil {
				return err
			}
			return r.writePDF(orDefault(out, "movimentacoes.pdf"), pdf)
		},
	}
	movements.Flags().StringVar(&start, "inicio", "", "data inicial (AAAA-MM-DD)")
	movements.Flags().StringVar(&end, "fim", "", "data final (AAAA-MM-DD)")

	cmd.AddCommand(inventory, lowStock, movements)
	return cmd
}

func (r *runner) labelCommand() *cobra.Command {
	var copies int
	var out string
	cmd := &cobra.Command{
		Use:   "etiqueta <produto_id>",
		Short: "Gera etiquetas com QR code para um produto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pdf, err := r.container.Printing.LabelsPDF(cmd.Context(), args[0], copies)
			if err != nil {
				return err
			}
			return r.writePDF(orDefault(out, "etiquetas-"+args[0]+".pdf"), pdf)
		},
	}
	cmd.Flags().IntVarP(&copies, "copias", "n", printing.DefaultLabelCopies, "quantidade de etiquetas")
	cmd.Flags().StringVarP(&out, "saida", "o", "", "arquivo de saída")
	return cmd
}

func (r *runner) writePDF(path string, pdf []byte) error {
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	r.printf("PDF gerado: %s\n", path)
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
