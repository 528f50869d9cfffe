package postgres_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/internal/infrastructure/postgres"
)

// fakeQuerier simula la tabla almox_kv en memoria.
type fakeQuerier struct {
	rows  map[string][]byte
	execs []string
	err   error
}

type fakeRow struct {
	value []byte
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.value
	return nil
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.execs = append(q.execs, sql)
	if q.err != nil {
		return pgconn.CommandTag{}, q.err
	}
	if strings.Contains(sql, "INSERT") {
		q.rows[args[0].(string)] = args[1].([]byte)
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (q *fakeQuerier) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	if q.err != nil {
		return fakeRow{err: q.err}
	}
	v, ok := q.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{value: v}
}

func TestKVRepo(t *testing.T) {
	ctx := context.Background()
	q := &fakeQuerier{rows: map[string][]byte{}}
	repo := postgres.NewKVRepository(q)

	require.NoError(t, repo.EnsureSchema(ctx))
	assert.Contains(t, q.execs[0], "CREATE TABLE IF NOT EXISTS almox_kv")

	_, err := repo.Get(ctx, "almoxarifado")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.Put(ctx, "almoxarifado", []byte(`{"produtos":[]}`)))
	got, err := repo.Get(ctx, "almoxarifado")
	require.NoError(t, err)
	assert.Equal(t, `{"produtos":[]}`, string(got))
}

func TestKVRepo_ErroresDeConexion(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewKVRepository(&fakeQuerier{rows: map[string][]byte{}, err: errors.New("conexión rechazada")})

	_, err := repo.Get(ctx, "almoxarifado")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Error(t, repo.Put(ctx, "almoxarifado", []byte("{}")))
	assert.Error(t, repo.EnsureSchema(ctx))
}
