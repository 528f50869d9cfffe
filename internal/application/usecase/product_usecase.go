package usecase

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/almoxarifado/internal/application/dto"
	"github.com/jhoicas/almoxarifado/internal/application/state"
	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
	"github.com/jhoicas/almoxarifado/internal/domain/inventory"
)

// ProductUseCase casos de uso del Catálogo. La cantidad solo se sobrescribe al guardar
// la edición; el resto de cambios de stock pasan por movimientos.
type ProductUseCase struct {
	store *state.Store
	log   zerolog.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(store *state.Store, log zerolog.Logger) *ProductUseCase {
	return &ProductUseCase{store: store, log: log}
}

// Save crea o actualiza un producto (upsert). Con ID vacío asigna el siguiente "Pnnn".
// Si el ID ya existe sobrescribe todos los campos en su posición actual.
func (uc *ProductUseCase) Save(ctx context.Context, in dto.SaveProductRequest) (*dto.SaveProductResponse, error) {
	product, err := productFromRequest(in)
	if err != nil {
		return nil, err
	}

	var created bool
	err = uc.store.Mutate(ctx, func(tx *state.Tx) error {
		if product.ID == "" {
			ids := make([]string, 0, len(tx.Doc.Products))
			for _, p := range tx.Doc.Products {
				ids = append(ids, p.ID)
			}
			product.ID = inventory.NextProductID(ids)
		}
		if existing, i := tx.FindProduct(product.ID); existing != nil {
			tx.Doc.Products[i] = product.Clone()
			return nil
		}
		created = true
		tx.Doc.Products = append(tx.Doc.Products, product.Clone())
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("produto_id", product.ID).Bool("novo", created).Msg("producto guardado")
	return &dto.SaveProductResponse{ID: product.ID, Created: created, Product: product}, nil
}

// Delete elimina un producto. No es error si no existe; los movimientos no se tocan.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	err := uc.store.Mutate(ctx, func(tx *state.Tx) error {
		if _, i := tx.FindProduct(id); i >= 0 {
			tx.Doc.Products = append(tx.Doc.Products[:i], tx.Doc.Products[i+1:]...)
		}
		return nil
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("produto_id", id).Msg("producto eliminado")
	return nil
}

// GetByID devuelve el producto o domain.ErrProductNotFound.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	doc := uc.store.Snapshot()
	for _, p := range doc.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// List devuelve los productos cuyo nome o id contiene filter (sin distinguir mayúsculas),
// en el orden del Catálogo.
func (uc *ProductUseCase) List(filter string) *dto.ProductListResponse {
	doc := uc.store.Snapshot()
	items := FilterProducts(doc.Products, filter)
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}

// Available devuelve la cantidad disponible de un producto.
func (uc *ProductUseCase) Available(id string) (*dto.AvailableQuantityResponse, error) {
	p, err := uc.GetByID(id)
	if err != nil {
		return nil, err
	}
	return &dto.AvailableQuantityResponse{ProductID: p.ID, Quantity: p.Quantity, Unit: p.Unit}, nil
}

// FilterProducts aplica el filtro de búsqueda del catálogo.
func FilterProducts(products []*entity.Product, filter string) []*entity.Product {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(filter))
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if needle == "" ||
			strings.Contains(fold.String(p.Name), needle) ||
			strings.Contains(fold.String(p.ID), needle) {
			out = append(out, p)
		}
	}
	return out
}

func productFromRequest(in dto.SaveProductRequest) (*entity.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	qty, err := requiredNonNegative(in.Quantity)
	if err != nil {
		return nil, err
	}
	minimum, err := requiredNonNegative(in.MinimumStock)
	if err != nil {
		return nil, err
	}
	var price decimal.NullDecimal
	if in.UnitPrice.Set {
		if in.UnitPrice.Err != nil || in.UnitPrice.Value.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		// precio 0 o vacío = sin precio
		if !in.UnitPrice.Value.IsZero() {
			price = decimal.NewNullDecimal(in.UnitPrice.Value)
		}
	}
	return &entity.Product{
		ID:           strings.TrimSpace(in.ID),
		Name:         strings.TrimSpace(in.Name),
		Category:     in.Category,
		Location:     in.Location,
		Quantity:     qty,
		Unit:         in.Unit,
		MinimumStock: minimum,
		Supplier:     in.Supplier,
		UnitPrice:    price,
		Description:  in.Description,
	}, nil
}

func requiredNonNegative(n dto.NumberInput) (decimal.Decimal, error) {
	if !n.Set || n.Err != nil || n.Value.IsNegative() {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return n.Value, nil
}
