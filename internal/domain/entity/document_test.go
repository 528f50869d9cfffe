package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almoxarifado/internal/domain/entity"
)

func TestDecodeLenient_CamposIlegiblesQuedanVacios(t *testing.T) {
	data := []byte(`{"produtos":"no es una lista","movimentacoes":[{"id":"M1","produto_id":"P001","tipo":"entrada","quantidade":3}],"config":{"moeda":"US$","theme":"azul"}}`)

	doc := entity.DecodeLenient(data, entity.DefaultSettings())

	assert.Empty(t, doc.Products)
	require.Len(t, doc.Movements, 1)
	assert.Equal(t, "US$", doc.Settings.Currency)
	assert.Equal(t, entity.ThemeLight, doc.Settings.Theme, "tema desconocido conserva el base")
	assert.Equal(t, entity.DateFormatPtBR, doc.Settings.DateFormat)
}

func TestDecodeLenient_NoEsJSON(t *testing.T) {
	doc := entity.DecodeLenient([]byte("{roto"), entity.DefaultSettings())

	assert.NotNil(t, doc.Products)
	assert.NotNil(t, doc.Movements)
	assert.Equal(t, entity.DefaultSettings(), doc.Settings)
}

func TestDecodeStrict(t *testing.T) {
	base := entity.DefaultSettings()
	base.Theme = entity.ThemeDark

	doc, err := entity.DecodeStrict([]byte(`{"produtos":[{"id":"P001","nome":"Luva","quantidade":2.5,"estoque_minimo":1}],"config":{"calcularValor":true}}`), base)
	require.NoError(t, err)
	require.Len(t, doc.Products, 1)
	assert.True(t, doc.Products[0].Quantity.Equal(decimal.RequireFromString("2.5")))
	assert.False(t, doc.Products[0].UnitPrice.Valid)
	assert.True(t, doc.Settings.CalculateValue)
	assert.Equal(t, entity.ThemeDark, doc.Settings.Theme, "la config importada se superpone a la actual")
	assert.Empty(t, doc.Movements)

	for _, bad := range []string{`[1,2]`, `"texto"`, `{"produtos":{"id":"P001"}}`, `{"movimentacoes":5}`, `{"config":[]}`} {
		_, err := entity.DecodeStrict([]byte(bad), base)
		assert.Error(t, err, bad)
	}
}

func TestProduct_JSONNumerosSinComillas(t *testing.T) {
	p := entity.Product{ID: "P001", Quantity: decimal.NewFromInt(5), MinimumStock: decimal.NewFromInt(2)}

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"quantidade":5`)
	assert.Contains(t, string(b), `"preco_unitario":null`)
}

func TestProduct_LowStockYValor(t *testing.T) {
	p := &entity.Product{
		Quantity:     decimal.NewFromInt(5),
		MinimumStock: decimal.NewFromInt(5),
		UnitPrice:    decimal.NewNullDecimal(decimal.RequireFromString("3.40")),
	}
	assert.True(t, p.IsLowStock(), "igual al mínimo cuenta como bajo stock")
	assert.True(t, p.Value().Equal(decimal.RequireFromString("17")))

	p.UnitPrice = decimal.NullDecimal{}
	assert.True(t, p.Value().IsZero())
}
