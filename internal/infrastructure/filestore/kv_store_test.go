package filestore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/internal/infrastructure/filestore"
)

func TestKVStore_PutGet(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "dados", "almoxarifado.json")
	store := filestore.NewKVStore(path)

	_, err := store.Get(ctx, "almoxarifado")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.Put(ctx, "almoxarifado", []byte(`{"produtos":[]}`)))
	require.NoError(t, store.Put(ctx, "lastLowStockNotification", []byte("1717236000000")))
	require.NoError(t, store.Put(ctx, "nota", []byte("texto livre")))

	reopened := filestore.NewKVStore(path)
	doc, err := reopened.Get(ctx, "almoxarifado")
	require.NoError(t, err)
	assert.JSONEq(t, `{"produtos":[]}`, string(doc))

	stamp, err := reopened.Get(ctx, "lastLowStockNotification")
	require.NoError(t, err)
	assert.Equal(t, "1717236000000", string(stamp))

	note, err := reopened.Get(ctx, "nota")
	require.NoError(t, err)
	assert.Equal(t, "texto livre", string(note))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no quedan archivos temporales")
}

func TestKVStore_ValoresOpacos(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "almoxarifado.json")
	store := filestore.NewKVStore(path)

	values := map[string][]byte{
		"string-json": []byte(`"x"`),
		"prefijo":     []byte("t:ya tiene prefijo"),
		"indentado":   []byte("{\n  \"a\": 1\n}"),
		"html":        []byte(`{"nome":"P&G <5L>"}`),
		"binario":     {0xff, 0x00, 0xfe},
		"vacio":       {},
	}
	for k, v := range values {
		require.NoError(t, store.Put(ctx, k, v), k)
	}

	reopened := filestore.NewKVStore(path)
	for k, v := range values {
		got, err := reopened.Get(ctx, k)
		require.NoError(t, err, k)
		assert.Equal(t, v, got, k)
	}
}

func TestKVStore_ArchivoCorrupto(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "almoxarifado.json")
	require.NoError(t, os.WriteFile(path, []byte("{corrupto"), 0o644))
	store := filestore.NewKVStore(path)

	_, err := store.Get(ctx, "almoxarifado")
	assert.ErrorIs(t, err, domain.ErrCorruptData)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{corrupto", string(data), "leer no modifica el archivo")

	require.NoError(t, store.Put(ctx, "almoxarifado", []byte(`{}`)))

	kept, err := os.ReadFile(store.CorruptPath())
	require.NoError(t, err)
	assert.Equal(t, "{corrupto", string(kept))
	doc, err := store.Get(ctx, "almoxarifado")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(doc))
}
