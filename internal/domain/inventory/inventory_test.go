package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
	"github.com/jhoicas/almoxarifado/internal/domain/inventory"
)

func TestNextProductID(t *testing.T) {
	cases := []struct {
		name     string
		existing []string
		want     string
	}{
		{"catálogo vacío", nil, "P001"},
		{"no rellena huecos", []string{"P001", "P003"}, "P004"},
		{"ignora IDs no numéricos", []string{"P002", "X9", "Pabc"}, "P003"},
		{"más de tres dígitos", []string{"P999"}, "P1000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.NextProductID(tc.existing))
		})
	}
}

func TestMovementIDs_EstrictamenteCrecientes(t *testing.T) {
	now := time.UnixMilli(1717236000000)
	var ids inventory.MovementIDs

	first := ids.Next(now)
	second := ids.Next(now)
	assert.Equal(t, "M1717236000000", first)
	assert.Equal(t, "M1717236000001", second)
}

func TestMovementIDs_ObserveExistentes(t *testing.T) {
	var ids inventory.MovementIDs
	ids.Observe("M2000")
	ids.Observe("basura")

	assert.Equal(t, "M2001", ids.Next(time.UnixMilli(1000)))
}

func TestApplyQuantity(t *testing.T) {
	ten := decimal.NewFromInt(10)

	got, err := inventory.ApplyQuantity(ten, entity.MovementTypeEntrada, decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(15)))

	got, err = inventory.ApplyQuantity(ten, entity.MovementTypeSaida, ten)
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "salida igual al disponible deja 0")

	_, err = inventory.ApplyQuantity(ten, entity.MovementTypeSaida, decimal.NewFromInt(11))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = inventory.ApplyQuantity(ten, entity.MovementTypeEntrada, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = inventory.ApplyQuantity(ten, entity.MovementType("ajuste"), decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseDateRange(t *testing.T) {
	r, err := inventory.ParseDateRange("2024-06-01", "2024-06-05")
	require.NoError(t, err)

	assert.True(t, r.Contains(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2024, 6, 5, 23, 59, 59, 0, time.UTC)), "el día final es inclusivo")
	assert.False(t, r.Contains(time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC)))
	assert.Equal(t, "01/06/2024 a 05/06/2024", r.Label("02/01/2006"))
}

func TestParseDateRange_FechasFaltantesOInvalidas(t *testing.T) {
	for _, pair := range [][2]string{{"", "2024-06-05"}, {"2024-06-01", ""}, {"01/06/2024", "2024-06-05"}} {
		_, err := inventory.ParseDateRange(pair[0], pair[1])
		assert.ErrorIs(t, err, domain.ErrInvalidRange, "%v", pair)
	}
}
