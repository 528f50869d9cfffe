// Package backup implementa exportación, restauración y borrado total de los datos.
package backup

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/almoxarifado/internal/application/state"
	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
)

// FileName nombre sugerido del archivo de respaldo.
const FileName = "backup-almoxarifado.json"

// UseCase respaldo (export), restauración (import) y limpieza de datos.
type UseCase struct {
	store *state.Store
	log   zerolog.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(store *state.Store, log zerolog.Logger) *UseCase {
	return &UseCase{store: store, log: log}
}

// Export devuelve el documento completo con indentación de 2 espacios.
func (uc *UseCase) Export() ([]byte, error) {
	return uc.store.Marshal(true)
}

// Restore reemplaza Catálogo y Libro por los del documento recibido. La config del archivo
// se superpone a la actual. Si el documento no tiene la forma esperada devuelve
// domain.ErrImport y el estado queda intacto.
func (uc *UseCase) Restore(ctx context.Context, data []byte) error {
	err := uc.store.Mutate(ctx, func(tx *state.Tx) error {
		doc, err := entity.DecodeStrict(data, tx.Doc.Settings)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrImport, err)
		}
		*tx.Doc = doc
		return nil
	})
	if err != nil {
		uc.log.Warn().Err(err).Msg("restauración rechazada")
		return err
	}
	doc := uc.store.Snapshot()
	uc.log.Info().
		Int("produtos", len(doc.Products)).
		Int("movimentacoes", len(doc.Movements)).
		Msg("datos restaurados")
	return nil
}

// ClearAll vacía Catálogo y Libro y vuelve la config a los valores por defecto,
// conservando el tema.
func (uc *UseCase) ClearAll(ctx context.Context) error {
	err := uc.store.Mutate(ctx, func(tx *state.Tx) error {
		settings := entity.DefaultSettings()
		settings.Theme = tx.Doc.Settings.Theme
		*tx.Doc = entity.Document{
			Products:  []*entity.Product{},
			Movements: []entity.Movement{},
			Settings:  settings,
		}
		return nil
	})
	if err != nil {
		return err
	}
	uc.log.Warn().Msg("todos los datos fueron eliminados")
	return nil
}
