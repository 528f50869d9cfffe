package cli

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jhoicas/almoxarifado/internal/application/dto"
	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
)

func (r *runner) productCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "produto",
		Aliases: []string{"produtos"},
		Short:   "Cadastro de produtos",
	}

	var filter string
	list := &cobra.Command{
		Use:   "listar",
		Short: "Lista os produtos (filtro por nome, categoria ou local)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			res := r.container.Products.List(filter)
			r.renderProducts("Produtos", res.Items)
			return nil
		},
	}
	list.Flags().StringVarP(&filter, "filtro", "f", "", "texto a buscar")

	show := &cobra.Command{
		Use:   "ver <id>",
		Short: "Mostra um produto",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := r.container.Products.GetByID(args[0])
			if err != nil {
				return err
			}
			r.renderProductDetail(p)
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remover <id>",
		Short: "Remove um produto (o histórico de movimentações é mantido)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.container.Products.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			r.printf("Produto %s removido.\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, show, r.saveProductCommand(), remove)
	return cmd
}

func (r *runner) saveProductCommand() *cobra.Command {
	var in struct {
		id, name, category, location, quantity, unit, minimum, supplier, price, description string
	}
	cmd := &cobra.Command{
		Use:   "salvar",
		Short: "Cria um produto ou edita um existente (--id)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := dto.SaveProductRequest{ID: in.id}
			// En la edición los campos no informados conservan el valor actual.
			if in.id != "" {
				p, err := r.container.Products.GetByID(in.id)
				if err != nil && !errors.Is(err, domain.ErrProductNotFound) {
					return err
				}
				if p != nil {
					req = requestFromProduct(p)
				}
			}
			flags := cmd.Flags()
			setString(flags.Changed("nome"), &req.Name, in.name)
			setString(flags.Changed("categoria"), &req.Category, in.category)
			setString(flags.Changed("local"), &req.Location, in.location)
			setString(flags.Changed("unidade"), &req.Unit, in.unit)
			setString(flags.Changed("fornecedor"), &req.Supplier, in.supplier)
			setString(flags.Changed("descricao"), &req.Description, in.description)
			if flags.Changed("quantidade") {
				req.Quantity = dto.NewNumber(in.quantity)
			}
			if flags.Changed("minimo") {
				req.MinimumStock = dto.NewNumber(in.minimum)
			}
			if flags.Changed("preco") {
				req.UnitPrice = dto.NewNumber(in.price)
			}

			res, err := r.container.Products.Save(cmd.Context(), req)
			if err != nil {
				return err
			}
			if res.Created {
				r.printf("Produto %s cadastrado.\n", res.ID)
			} else {
				r.printf("Produto %s atualizado.\n", res.ID)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.id, "id", "", "ID do produto a editar")
	f.StringVar(&in.name, "nome", "", "nome")
	f.StringVar(&in.category, "categoria", "", "categoria")
	f.StringVar(&in.location, "local", "", "localização")
	f.StringVar(&in.quantity, "quantidade", "", "quantidade em estoque")
	f.StringVar(&in.unit, "unidade", "", "unidade de medida")
	f.StringVar(&in.minimum, "minimo", "", "estoque mínimo")
	f.StringVar(&in.supplier, "fornecedor", "", "fornecedor")
	f.StringVar(&in.price, "preco", "", "preço unitário")
	f.StringVar(&in.description, "descricao", "", "descrição")
	return cmd
}

func requestFromProduct(p *entity.Product) dto.SaveProductRequest {
	req := dto.SaveProductRequest{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Location:     p.Location,
		Quantity:     dto.NumberOf(p.Quantity),
		Unit:         p.Unit,
		MinimumStock: dto.NumberOf(p.MinimumStock),
		Supplier:     p.Supplier,
		Description:  p.Description,
	}
	if p.UnitPrice.Valid {
		req.UnitPrice = dto.NumberOf(p.UnitPrice.Decimal)
	}
	return req
}

func setString(changed bool, dst *string, v string) {
	if changed {
		*dst = v
	}
}

func (r *runner) renderProductDetail(p *entity.Product) {
	t := r.newTable(fmt.Sprintf("%s - %s", p.ID, p.Name))
	price := "-"
	if p.UnitPrice.Valid {
		price = money(r.container.Store.Settings().Currency, p.UnitPrice.Decimal)
	}
	t.AppendRows([]table.Row{
		{"Categoria", p.Category},
		{"Local", p.Location},
		{"Quantidade", quantity(p.Quantity, p.Unit)},
		{"Estoque mínimo", p.MinimumStock.String()},
		{"Fornecedor", p.Supplier},
		{"Preço unitário", price},
		{"Descrição", p.Description},
	})
	t.Render()
}
