// Package sheetsync exporta la lista de productos a la planilla externa sin bloquear
// ninguna operación local.
package sheetsync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/almoxarifado/internal/application/ports"
	"github.com/jhoicas/almoxarifado/internal/application/state"
	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
)

// UseCase sincronización "fire-and-forget" con la planilla.
type UseCase struct {
	store    *state.Store
	exporter ports.ProductExporter
	notifier ports.Notifier
	timeout  time.Duration
	log      zerolog.Logger
	wg       sync.WaitGroup
}

// NewUseCase construye el caso de uso. exporter nil = sincronización deshabilitada.
func NewUseCase(store *state.Store, exporter ports.ProductExporter, notifier ports.Notifier, timeout time.Duration, log zerolog.Logger) *UseCase {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &UseCase{store: store, exporter: exporter, notifier: notifier, timeout: timeout, log: log}
}

// Start toma una copia de los productos y lanza el envío en segundo plano. Devuelve
// enseguida; el resultado se informa por el Notifier. Solo devuelve error si la
// sincronización no está configurada.
func (uc *UseCase) Start() error {
	if uc.exporter == nil {
		err := fmt.Errorf("%w: endpoint no configurado", domain.ErrSync)
		uc.notify(ports.NotifyError, "Erro ao sincronizar planilha!")
		return err
	}
	products := uc.store.Snapshot().Products

	uc.wg.Add(1)
	go func() {
		defer uc.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), uc.timeout)
		defer cancel()
		if err := uc.run(ctx, products); err != nil {
			uc.log.Error().Err(err).Msg("sincronización de planilla")
			uc.notify(ports.NotifyError, "Erro ao sincronizar planilha!")
			return
		}
		uc.log.Info().Int("produtos", len(products)).Msg("planilla sincronizada")
		uc.notify(ports.NotifySuccess, "Planilha sincronizada!")
	}()
	return nil
}

// SyncNow envía los productos y espera el resultado (CLI).
func (uc *UseCase) SyncNow(ctx context.Context) error {
	if uc.exporter == nil {
		return fmt.Errorf("%w: endpoint no configurado", domain.ErrSync)
	}
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	return uc.run(ctx, uc.store.Snapshot().Products)
}

// Wait espera a que terminen los envíos en curso (apagado y tests).
func (uc *UseCase) Wait() {
	uc.wg.Wait()
}

func (uc *UseCase) run(ctx context.Context, products []*entity.Product) error {
	err := uc.exporter.ExportProducts(ctx, products)
	if err == nil || errors.Is(err, domain.ErrSync) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrSync, err)
}

func (uc *UseCase) notify(level ports.NotificationLevel, msg string) {
	if uc.notifier != nil {
		uc.notifier.Notify(level, msg)
	}
}
