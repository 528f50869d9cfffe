package state_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almoxarifado/internal/application/state"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
	"github.com/jhoicas/almoxarifado/internal/domain/repository"
	"github.com/jhoicas/almoxarifado/internal/infrastructure/filestore"
	"github.com/jhoicas/almoxarifado/internal/infrastructure/memory"
)

type staticSeed struct {
	data []byte
	err  error
}

func (s staticSeed) Seed(context.Context) ([]byte, error) { return s.data, s.err }

var fixedNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func TestLoad_AdoptaSemillaYLaGuarda(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	seed := staticSeed{data: []byte(`{"produtos":[{"id":"P001","nome":"Luva","quantidade":3,"estoque_minimo":1}],"movimentacoes":[{"id":"M500","produto_id":"P001","tipo":"entrada","quantidade":3}]}`)}
	store := state.New(kv, seed, state.WithClock(clock))

	require.NoError(t, store.Load(ctx))

	doc := store.Snapshot()
	require.Len(t, doc.Products, 1)
	assert.Equal(t, entity.DefaultSettings(), doc.Settings, "sin config en la semilla se usan los valores por defecto")

	saved, err := kv.Get(ctx, repository.KeyDocument)
	require.NoError(t, err)
	assert.Contains(t, string(saved), `"P001"`)
}

func TestLoad_SemillaFallidaIniciaVacioSinGuardar(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	store := state.New(kv, staticSeed{err: errors.New("sin archivo")})

	require.NoError(t, store.Load(ctx))

	assert.Empty(t, store.Snapshot().Products)
	_, err := kv.Get(ctx, repository.KeyDocument)
	assert.Error(t, err)
}

func TestLoad_DocumentoMalFormadoEsTolerante(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	require.NoError(t, kv.Put(ctx, repository.KeyDocument, []byte(`{"produtos":42,"config":{"moeda":"€"}}`)))
	store := state.New(kv, nil)

	require.NoError(t, store.Load(ctx))

	doc := store.Snapshot()
	assert.NotNil(t, doc.Products)
	assert.Empty(t, doc.Products)
	assert.Equal(t, "€", doc.Settings.Currency)
}

func TestLoad_AlmacenIlegibleIniciaConValoresPorDefecto(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "almoxarifado.json")
	require.NoError(t, os.WriteFile(path, []byte("{corrupto"), 0o644))
	kv := filestore.NewKVStore(path)
	seed := staticSeed{data: []byte(`{"produtos":[{"id":"P001","nome":"Luva","quantidade":3,"estoque_minimo":1}]}`)}
	store := state.New(kv, seed, state.WithClock(clock))

	require.NoError(t, store.Load(ctx))

	doc := store.Snapshot()
	assert.Empty(t, doc.Products, "no adopta la semilla sobre datos existentes")
	assert.Equal(t, entity.DefaultSettings(), doc.Settings)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{corrupto", string(data), "cargar no sobrescribe el archivo")

	require.NoError(t, store.Mutate(ctx, func(tx *state.Tx) error {
		tx.Doc.Products = append(tx.Doc.Products, &entity.Product{ID: "P001", Name: "Balde"})
		return nil
	}))
	_, err = os.Stat(kv.CorruptPath())
	assert.NoError(t, err, "el archivo ilegible se conserva aparte")
	saved, err := kv.Get(ctx, repository.KeyDocument)
	require.NoError(t, err)
	assert.Contains(t, string(saved), `"Balde"`)
}

func TestMutate_GuardaYPublica(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	store := state.New(kv, nil, state.WithClock(clock))
	require.NoError(t, store.Load(ctx))

	err := store.Mutate(ctx, func(tx *state.Tx) error {
		tx.Doc.Products = append(tx.Doc.Products, &entity.Product{ID: "P001", Name: "Luva", Quantity: decimal.NewFromInt(1)})
		return nil
	})
	require.NoError(t, err)

	reloaded := state.New(kv, nil)
	require.NoError(t, reloaded.Load(ctx))
	require.Len(t, reloaded.Snapshot().Products, 1)
	assert.Equal(t, "Luva", reloaded.Snapshot().Products[0].Name)
}

func TestMutate_ErrorDeGuardadoNoCambiaElEstado(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	store := state.New(kv, nil)
	require.NoError(t, store.Load(ctx))

	kv.FailPut = errors.New("disco lleno")
	err := store.Mutate(ctx, func(tx *state.Tx) error {
		tx.Doc.Settings.Currency = "US$"
		return nil
	})

	require.Error(t, err)
	assert.Equal(t, "R$", store.Settings().Currency)
}

func TestMutate_ErrorEnFnNoGuarda(t *testing.T) {
	ctx := context.Background()
	store := state.New(memory.NewKVStore(), nil)
	require.NoError(t, store.Load(ctx))
	boom := errors.New("boom")

	err := store.Mutate(ctx, func(tx *state.Tx) error {
		tx.Doc.Products = append(tx.Doc.Products, &entity.Product{ID: "P001"})
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, store.Snapshot().Products)
}

func TestSnapshot_EsUnaCopia(t *testing.T) {
	ctx := context.Background()
	store := state.New(memory.NewKVStore(), staticSeed{data: []byte(`{"produtos":[{"id":"P001","nome":"Luva","quantidade":3,"estoque_minimo":1}]}`)})
	require.NoError(t, store.Load(ctx))

	snap := store.Snapshot()
	snap.Products[0].Name = "alterado"

	assert.Equal(t, "Luva", store.Snapshot().Products[0].Name)
}

func TestTx_NextMovementIDContinuaDespuesDeLosExistentes(t *testing.T) {
	ctx := context.Background()
	seed := staticSeed{data: []byte(`{"movimentacoes":[{"id":"M1718020800000","produto_id":"P001","tipo":"entrada","quantidade":1}]}`)}
	store := state.New(memory.NewKVStore(), seed, state.WithClock(clock))
	require.NoError(t, store.Load(ctx))

	var id string
	require.NoError(t, store.Mutate(ctx, func(tx *state.Tx) error {
		id = tx.NextMovementID()
		return nil
	}))
	// fixedNow en ms coincide con el movimiento existente.
	assert.Equal(t, "M1718020800001", id)
}
