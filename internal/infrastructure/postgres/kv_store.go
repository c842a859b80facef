package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

var _ repository.KVStore = (*KVStore)(nil)

// Querier abstrae pool y tx para que las mismas sentencias sirvan dentro y fuera de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

const upsertSQL = `
	INSERT INTO kv_store (key, value, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

// KVStore implementación del puerto KVStore sobre una tabla kv_store (un blob JSONB por clave).
type KVStore struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

// NewKVStore construye el adaptador y crea la tabla si no existe.
func NewKVStore(ctx context.Context, pool *pgxpool.Pool) (*KVStore, error) {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return nil, fmt.Errorf("crear tabla kv_store: %w", err)
	}
	return &KVStore{pool: pool, tx: NewTxRunner(pool)}, nil
}

// Get obtiene el blob de una clave.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

// Set inserta o reemplaza el blob.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	return upsert(ctx, s.pool, key, value)
}

// Delete elimina la clave.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// SetMany hace upsert de todas las claves en una sola transacción.
func (s *KVStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	return s.tx.Run(ctx, func(q Querier) error {
		for k, v := range entries {
			if err := upsert(ctx, q, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

// Close no cierra el pool: su dueño es quien lo creó.
func (s *KVStore) Close() error { return nil }

func upsert(ctx context.Context, q Querier, key string, value []byte) error {
	// JSONB se envía como texto para que pgx no lo trate como bytea.
	if _, err := q.Exec(ctx, upsertSQL, key, string(value)); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}
