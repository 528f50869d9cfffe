package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/internal/infrastructure/memory"
)

func TestKVStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKVStore()

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	value := []byte("v1")
	require.NoError(t, store.Put(ctx, "k", value))
	value[0] = 'x'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", string(got), "guarda una copia")

	store.FailPut = errors.New("lleno")
	assert.Error(t, store.Put(ctx, "k", []byte("v2")))
}
