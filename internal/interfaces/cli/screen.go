package cli

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
)

// Screen pantalla navegable de la aplicación.
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenProducts
	ScreenMovements
	ScreenHistory
)

var screenNames = map[Screen]string{
	ScreenDashboard: "dashboard",
	ScreenProducts:  "produtos",
	ScreenMovements: "movimentacoes",
	ScreenHistory:   "historico",
}

func (s Screen) String() string {
	if n, ok := screenNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Screen(%d)", int(s))
}

// ParseScreen convierte el nombre en Screen.
func ParseScreen(name string) (Screen, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range screenNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: tela desconhecida %q", domain.ErrInvalidInput, name)
}

func (r *runner) screenCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "tela <dashboard|produtos|movimentacoes|historico>",
		Short:     "Mostra uma tela da aplicação",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"dashboard", "produtos", "movimentacoes", "historico"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ParseScreen(args[0])
			if err != nil {
				return err
			}
			return r.renderScreen(cmd, s)
		},
	}
}

func (r *runner) renderScreen(cmd *cobra.Command, s Screen) error {
	switch s {
	case ScreenDashboard:
		return r.renderDashboard(cmd)
	case ScreenProducts:
		r.renderProducts("Produtos", r.container.Products.List("").Items)
	case ScreenMovements:
		r.renderStockPicker()
	case ScreenHistory:
		r.renderCatalog(r.container.Products.List("").Items)
	}
	return nil
}

// renderCatalog muestra todos los productos cadastrados con sus datos de registro.
func (r *runner) renderCatalog(products []*entity.Product) {
	t := r.newTable("Histórico de produtos cadastrados")
	t.AppendHeader(table.Row{"ID", "Nome", "Categoria", "Quantidade", "Unidade", "Fornecedor", "Preço", "Local"})
	for _, p := range products {
		price := ""
		if p.UnitPrice.Valid {
			price = p.UnitPrice.Decimal.String()
		}
		t.AppendRow(table.Row{p.ID, p.Name, p.Category, p.Quantity.String(), p.Unit, p.Supplier, price, p.Location})
	}
	t.Render()
}

// renderStockPicker lista los productos disponibles para registrar movimientos.
func (r *runner) renderStockPicker() {
	t := r.newTable("Movimentações")
	t.AppendHeader(table.Row{"ID", "Produto", "Disponível"})
	for _, p := range r.container.Products.List("").Items {
		t.AppendRow(table.Row{p.ID, p.Name, quantity(p.Quantity, p.Unit)})
	}
	t.Render()
	r.printf("Use: almox mov registrar <produto_id> <entrada|saida> <quantidade>\n")
}
