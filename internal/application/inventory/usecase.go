package inventory

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almoxarifado/internal/application/dto"
	"github.com/jhoicas/almoxarifado/internal/application/state"
	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
	"github.com/jhoicas/almoxarifado/internal/domain/inventory"
)

// RegisterMovementUseCase es el motor de stock: aplica entradas y salidas sobre la cantidad
// del producto y agrega el movimiento al libro, todo en una sola escritura del documento.
type RegisterMovementUseCase struct {
	store *state.Store
	log   zerolog.Logger
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(store *state.Store, log zerolog.Logger) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{store: store, log: log}
}

// MovementInputDTO entrada para registrar un movimiento.
type MovementInputDTO struct {
	ProductID string
	Type      entity.MovementType
	Quantity  decimal.Decimal
	Reason    string
	Document  string
	User      string
}

// RegisterMovementFromRequest adapta el request HTTP/CLI al caso de uso.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, in dto.RegisterMovementRequest) (*dto.RegisterMovementResponse, error) {
	if !in.Quantity.Set || in.Quantity.Err != nil {
		return nil, domain.ErrInvalidInput
	}
	return uc.RegisterMovement(ctx, MovementInputDTO{
		ProductID: strings.TrimSpace(in.ProductID),
		Type:      in.Type,
		Quantity:  in.Quantity.Value,
		Reason:    in.Reason,
		Document:  in.Document,
		User:      in.User,
	})
}

// RegisterMovement resuelve el producto, verifica disponibilidad en salidas, ajusta la
// cantidad, agrega el movimiento y guarda. Si algo falla no queda ningún cambio.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInputDTO) (*dto.RegisterMovementResponse, error) {
	if !input.Type.Valid() || !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	var out dto.RegisterMovementResponse
	err := uc.store.Mutate(ctx, func(tx *state.Tx) error {
		product, _ := tx.FindProduct(input.ProductID)
		if product == nil {
			return domain.ErrProductNotFound
		}
		newQty, err := inventory.ApplyQuantity(product.Quantity, input.Type, input.Quantity)
		if err != nil {
			return err
		}
		product.Quantity = newQty

		mov := entity.Movement{
			ID:        tx.NextMovementID(),
			ProductID: product.ID,
			Type:      input.Type,
			Quantity:  input.Quantity,
			Reason:    input.Reason,
			Document:  input.Document,
			User:      input.User,
			Date:      tx.Now,
		}
		tx.Doc.Movements = append(tx.Doc.Movements, mov)
		out = dto.RegisterMovementResponse{Movement: mov, NewQuantity: newQty}
		return nil
	})
	if err != nil {
		uc.log.Warn().Err(err).
			Str("produto_id", input.ProductID).
			Str("tipo", string(input.Type)).
			Str("quantidade", input.Quantity.String()).
			Msg("movimiento rechazado")
		return nil, err
	}
	uc.log.Info().
		Str("movimentacao_id", out.Movement.ID).
		Str("produto_id", input.ProductID).
		Str("tipo", string(input.Type)).
		Str("quantidade_atual", out.NewQuantity.String()).
		Msg("movimiento registrado")
	return &out, nil
}
