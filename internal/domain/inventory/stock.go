package inventory

import (
	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ApplyQuantity calcula la cantidad resultante de aplicar un movimiento sobre onHand.
// Una salida mayor que lo disponible devuelve ErrInsufficientStock; la cantidad nunca queda negativa.
func ApplyQuantity(onHand decimal.Decimal, tipo entity.MovementType, qty decimal.Decimal) (decimal.Decimal, error) {
	if !tipo.Valid() || !qty.GreaterThan(decimal.Zero) {
		return onHand, domain.ErrInvalidInput
	}
	if tipo == entity.MovementTypeSaida {
		if qty.GreaterThan(onHand) {
			return onHand, domain.ErrInsufficientStock
		}
		return onHand.Sub(qty), nil
	}
	return onHand.Add(qty), nil
}
