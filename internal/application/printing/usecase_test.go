package printing_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almoxarifado/internal/application/analytics"
	"github.com/jhoicas/almoxarifado/internal/application/dto"
	"github.com/jhoicas/almoxarifado/internal/application/printing"
	"github.com/jhoicas/almoxarifado/internal/application/state"
	"github.com/jhoicas/almoxarifado/internal/application/usecase"
	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
	"github.com/jhoicas/almoxarifado/internal/infrastructure/memory"
)

type seedJSON string

func (s seedJSON) Seed(context.Context) ([]byte, error) { return []byte(s), nil }

// fakeRenderer guarda lo que recibe y devuelve un PDF vacío.
type fakeRenderer struct {
	inventory dto.InventoryReport
	lowStock  dto.InventoryReport
	movements dto.MovementReport
	label     *entity.Product
	copies    int
}

func (f *fakeRenderer) InventoryReport(_ context.Context, rep dto.InventoryReport) ([]byte, error) {
	f.inventory = rep
	return []byte("%PDF"), nil
}

func (f *fakeRenderer) LowStockReport(_ context.Context, rep dto.InventoryReport) ([]byte, error) {
	f.lowStock = rep
	return []byte("%PDF"), nil
}

func (f *fakeRenderer) MovementReport(_ context.Context, rep dto.MovementReport) ([]byte, error) {
	f.movements = rep
	return []byte("%PDF"), nil
}

func (f *fakeRenderer) Labels(_ context.Context, p *entity.Product, copies int) ([]byte, error) {
	f.label, f.copies = p, copies
	return []byte("%PDF"), nil
}

func newUseCase(t *testing.T) (*printing.UseCase, *fakeRenderer) {
	t.Helper()
	seed := seedJSON(`{"produtos":[
		{"id":"P001","nome":"Luva","quantidade":5,"estoque_minimo":2},
		{"id":"P002","nome":"Balde","quantidade":0,"estoque_minimo":1}
	],"movimentacoes":[{"id":"M1","produto_id":"P001","tipo":"entrada","quantidade":5,"data":"2024-06-03T08:00:00Z"}]}`)
	store := state.New(memory.NewKVStore(), seed, state.WithClock(func() time.Time { return time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC) }))
	require.NoError(t, store.Load(context.Background()))

	renderer := &fakeRenderer{}
	dashboard := analytics.NewDashboardUseCase(store, nil, "Almoxarifado", zerolog.Nop())
	products := usecase.NewProductUseCase(store, zerolog.Nop())
	return printing.NewUseCase(dashboard, products, renderer, renderer), renderer
}

func TestReports(t *testing.T) {
	uc, r := newUseCase(t)
	ctx := context.Background()

	_, err := uc.InventoryPDF(ctx)
	require.NoError(t, err)
	assert.Len(t, r.inventory.Products, 2)

	_, err = uc.LowStockPDF(ctx)
	require.NoError(t, err)
	require.Len(t, r.lowStock.Products, 1)
	assert.Equal(t, "P002", r.lowStock.Products[0].ID)

	_, err = uc.MovementsPDF(ctx, "2024-06-01", "2024-06-03")
	require.NoError(t, err)
	assert.Len(t, r.movements.Rows, 1)
	assert.Equal(t, "02/01/2006", r.movements.DateLayout)

	_, err = uc.MovementsPDF(ctx, "2024-06-01", "")
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestLabels(t *testing.T) {
	uc, r := newUseCase(t)
	ctx := context.Background()

	_, err := uc.LabelsPDF(ctx, "P001", 0)
	require.NoError(t, err)
	assert.Equal(t, printing.DefaultLabelCopies, r.copies)
	assert.Equal(t, "Luva", r.label.Name)

	_, err = uc.LabelsPDF(ctx, "P404", 2)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = uc.LabelsPDF(ctx, "P001", 500)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
