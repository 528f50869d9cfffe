package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jhoicas/almoxarifado/internal/application/dto"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
)

func (r *runner) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Preferências",
	}

	show := &cobra.Command{
		Use:   "ver",
		Short: "Mostra a configuração atual",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			r.renderSettings(r.container.Settings.Get())
			return nil
		},
	}

	var dateFormat, currency, theme string
	var calculate bool
	set := &cobra.Command{
		Use:   "definir",
		Short: "Altera as opções informadas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req dto.UpdateSettingsRequest
			flags := cmd.Flags()
			if flags.Changed("formato-data") {
				req.DateFormat = &dateFormat
			}
			if flags.Changed("calcular-valor") {
				req.CalculateValue = &calculate
			}
			if flags.Changed("moeda") {
				req.Currency = &currency
			}
			if flags.Changed("tema") {
				req.Theme = &theme
			}
			s, err := r.container.Settings.Update(cmd.Context(), req)
			if err != nil {
				return err
			}
			r.renderSettings(s)
			return nil
		},
	}
	set.Flags().StringVar(&dateFormat, "formato-data", "", "pt-BR, en-US ou ISO")
	set.Flags().BoolVar(&calculate, "calcular-valor", false, "calcular o valor estimado do estoque")
	set.Flags().StringVar(&currency, "moeda", "", "símbolo da moeda")
	set.Flags().StringVar(&theme, "tema", "", "light ou dark")

	toggle := &cobra.Command{
		Use:   "tema",
		Short: "Alterna entre tema claro e escuro",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := r.container.Settings.ToggleTheme(cmd.Context())
			if err != nil {
				return err
			}
			r.printf("Tema: %s\n", s.Theme)
			return nil
		},
	}

	cmd.AddCommand(show, set, toggle)
	return cmd
}

func (r *runner) renderSettings(s entity.Settings) {
	t := r.newTable("Configuração")
	t.AppendRows([]table.Row{
		{"formatoData", s.DateFormat},
		{"calcularValor", s.CalculateValue},
		{"moeda", s.Currency},
		{"theme", s.Theme},
	})
	t.Render()
}
