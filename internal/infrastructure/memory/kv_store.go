// Package memory implementa el almacén local en memoria (tests y STORE_DRIVER=memory).
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVStore)(nil)

// KVStore mapa clave -> valor protegido por mutex. Guarda copias de los bytes.
type KVStore struct {
	mu   sync.RWMutex
	data map[string][]byte
	// FailPut, si no es nil, se devuelve en cada Put (simula disco lleno).
	FailPut error
}

// NewKVStore construye un almacén vacío.
func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string][]byte)}
}

// Get implementa repository.KeyValueStore.
func (s *KVStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Put implementa repository.KeyValueStore.
func (s *KVStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailPut != nil {
		return s.FailPut
	}
	s.data[key] = append([]byte(nil), value...)
	return nil
}
