// Package filestore implementa el almacén local sobre un archivo JSON en disco.
// El archivo guarda un objeto {clave: valor}. Los valores JSON compactos que no son
// strings se guardan embebidos para que el archivo siga siendo legible; el resto se
// guarda como string con prefijo "t:" (texto) o "b:" (base64).
package filestore

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVStore)(nil)

// KVStore almacén clave-valor persistido en un único archivo.
type KVStore struct {
	mu   sync.Mutex
	path string
}

// NewKVStore construye el almacén. El directorio se crea en la primera escritura.
func NewKVStore(path string) *KVStore {
	return &KVStore{path: path}
}

// Path ruta del archivo.
func (s *KVStore) Path() string { return s.path }

// CorruptPath ruta donde se conserva un archivo ilegible al escribir sobre él.
func (s *KVStore) CorruptPath() string { return s.path + ".corrompido" }

// Get implementa repository.KeyValueStore.
func (s *KVStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.read()
	if err != nil {
		return nil, err
	}
	v, ok := entries[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return decodeValue(v)
}

// Put implementa repository.KeyValueStore. Escribe en un archivo temporal y lo renombra,
// así un corte a mitad de escritura nunca deja el archivo truncado. Si el archivo actual
// es ilegible se aparta como <path>.corrompido y se empieza uno nuevo.
func (s *KVStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.read()
	if errors.Is(err, domain.ErrCorruptData) {
		if rerr := os.Rename(s.path, s.CorruptPath()); rerr != nil {
			return fmt.Errorf("filestore: apartar archivo ilegible: %w", rerr)
		}
		entries, err = map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return err
	}
	entries[key] = encodeValue(value)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore: serializar: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("filestore: crear directorio: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("filestore: archivo temporal: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("filestore: escribir: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("filestore: cerrar: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("filestore: renombrar: %w", err)
	}
	return nil
}

func (s *KVStore) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("filestore: leer %s: %w", s.path, err)
	}
	entries := map[string]json.RawMessage{}
	if len(bytes.TrimSpace(data)) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: filestore %s: %v", domain.ErrCorruptData, s.path, err)
	}
	return entries, nil
}

const (
	textPrefix   = "t:"
	binaryPrefix = "b:"
)

// encodeValue embebe el valor si ya es JSON compacto y no es un string; si no, lo guarda
// como string con prefijo para que Get devuelva exactamente los mismos bytes.
func encodeValue(v []byte) json.RawMessage {
	if embeddable(v) {
		return append(json.RawMessage(nil), v...)
	}
	tagged := textPrefix + string(v)
	if !utf8.Valid(v) {
		tagged = binaryPrefix + base64.StdEncoding.EncodeToString(v)
	}
	s, _ := json.Marshal(tagged)
	return s
}

func embeddable(v []byte) bool {
	if len(v) == 0 || v[0] == '"' || !json.Valid(v) {
		return false
	}
	// el encoder compacta y escapa HTML en los valores embebidos; solo se embebe lo que
	// ya sale igual de ese proceso
	var compact, escaped bytes.Buffer
	if err := json.Compact(&compact, v); err != nil {
		return false
	}
	json.HTMLEscape(&escaped, compact.Bytes())
	return bytes.Equal(escaped.Bytes(), v)
}

func decodeValue(v json.RawMessage) ([]byte, error) {
	if len(v) > 0 && v[0] == '"' {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return nil, fmt.Errorf("%w: valor: %v", domain.ErrCorruptData, err)
		}
		switch {
		case strings.HasPrefix(s, textPrefix):
			return []byte(s[len(textPrefix):]), nil
		case strings.HasPrefix(s, binaryPrefix):
			b, err := base64.StdEncoding.DecodeString(s[len(binaryPrefix):])
			if err != nil {
				return nil, fmt.Errorf("%w: valor: %v", domain.ErrCorruptData, err)
			}
			return b, nil
		}
		return nil, fmt.Errorf("%w: valor sin prefijo", domain.ErrCorruptData)
	}
	// MarshalIndent reindenta los valores embebidos al escribir el archivo.
	var buf bytes.Buffer
	if err := json.Compact(&buf, v); err != nil {
		return nil, fmt.Errorf("%w: valor: %v", domain.ErrCorruptData, err)
	}
	return buf.Bytes(), nil
}
