// Package seed provee el documento de arranque usado cuando aún no hay datos guardados.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/jhoicas/almoxarifado/internal/domain/repository"
)

//go:embed sample-data.json
var sampleData []byte

var _ repository.SeedSource = (*Source)(nil)

// Source lee la semilla de Path o, si está vacío, la embebida en el binario.
type Source struct {
	Path string
}

// NewSource construye la fuente. path vacío = semilla embebida.
func NewSource(path string) *Source {
	return &Source{Path: path}
}

// Seed implementa repository.SeedSource.
func (s *Source) Seed(_ context.Context) ([]byte, error) {
	if s.Path == "" {
		return append([]byte(nil), sampleData...), nil
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("leer semilla %s: %w", s.Path, err)
	}
	return data, nil
}
