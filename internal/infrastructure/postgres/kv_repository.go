package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVRepo)(nil)

// Querier subconjunto de pgxpool.Pool / pgx.Tx que usa el repositorio.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const createKVTable = `
	CREATE TABLE IF NOT EXISTS almox_kv (
		key        TEXT PRIMARY KEY,
		value      BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

// KVRepo almacén clave-valor sobre una tabla PostgreSQL (una fila por clave).
type KVRepo struct {
	q Querier
}

// NewKVRepository construye el adaptador. Pasar pool o tx (Querier).
func NewKVRepository(q Querier) *KVRepo {
	return &KVRepo{q: q}
}

// EnsureSchema crea la tabla si no existe.
func (r *KVRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, createKVTable); err != nil {
		return fmt.Errorf("crear tabla almox_kv: %w", err)
	}
	return nil
}

// Get implementa repository.KeyValueStore.
func (r *KVRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.q.QueryRow(ctx, `SELECT value FROM almox_kv WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get kv %s: %w", key, err)
	}
	return value, nil
}

// Put implementa repository.KeyValueStore (upsert, sobrescribe el valor completo).
func (r *KVRepo) Put(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO almox_kv (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := r.q.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("put kv %s: %w", key, err)
	}
	return nil
}
