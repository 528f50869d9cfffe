// Package app arma el grafo de dependencias compartido por el servidor HTTP y el CLI.
package app

import (
	"context"
	"fmt"

	"github.com/jhoicas/almoxarifado/internal/application/analytics"
	"github.com/jhoicas/almoxarifado/internal/application/backup"
	"github.com/jhoicas/almoxarifado/internal/application/inventory"
	"github.com/jhoicas/almoxarifado/internal/application/ports"
	"github.com/jhoicas/almoxarifado/internal/application/printing"
	"github.com/jhoicas/almoxarifado/internal/application/sheetsync"
	"github.com/jhoicas/almoxarifado/internal/application/state"
	"github.com/jhoicas/almoxarifado/internal/application/usecase"
	"github.com/jhoicas/almoxarifado/internal/domain/repository"
	"github.com/jhoicas/almoxarifado/internal/infrastructure/filestore"
	"github.com/jhoicas/almoxarifado/internal/infrastructure/memory"
	"github.com/jhoicas/almoxarifado/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/almoxarifado/internal/infrastructure/pdf"
	"github.com/jhoicas/almoxarifado/internal/infrastructure/postgres"
	"github.com/jhoicas/almoxarifado/internal/infrastructure/seed"
	"github.com/jhoicas/almoxarifado/internal/infrastructure/sheets"
	"github.com/jhoicas/almoxarifado/pkg/config"
	"github.com/jhoicas/almoxarifado/pkg/logger"
)

// notificationFeedSize cantidad de avisos que conserva el feed.
const notificationFeedSize = 100

// Container casos de uso listos para usar.
type Container struct {
	Store         *state.Store
	Products      *usecase.ProductUseCase
	Settings      *usecase.SettingsUseCase
	Movements     *inventory.RegisterMovementUseCase
	Replenishment *inventory.ReplenishmentUseCase
	Dashboard     *analytics.DashboardUseCase
	Backup        *backup.UseCase
	Sync          *sheetsync.UseCase
	Printing      *printing.UseCase
	Notifications *notify.Feed

	closers []func()
}

// Close libera los recursos abiertos (pool de PostgreSQL).
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// Build abre el almacén configurado, carga el documento y construye los casos de uso.
func Build(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Container, error) {
	c := &Container{}

	kv, err := openStore(ctx, cfg, log, c)
	if err != nil {
		c.Close()
		return nil, err
	}

	store := state.New(kv, seed.NewSource(cfg.Store.SeedPath), state.WithLogger(log.Component("state")))
	if err := store.Load(ctx); err != nil {
		c.Close()
		return nil, fmt.Errorf("cargar datos: %w", err)
	}
	c.Store = store

	c.Notifications = notify.NewFeed(notificationFeedSize, log.Component("notify"))

	// Sin SYNC_URL la interfaz queda nil y la sincronización responde ErrSync.
	var exporter ports.ProductExporter
	if cfg.Sync.URL != "" {
		exporter = sheets.NewClient(cfg.Sync.URL, cfg.Sync.Timeout)
	}

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	c.Products = usecase.NewProductUseCase(store, log.Component("products"))
	c.Settings = usecase.NewSettingsUseCase(store, log.Component("settings"))
	c.Movements = inventory.NewRegisterMovementUseCase(store, log.Component("movements"))
	c.Replenishment = inventory.NewReplenishmentUseCase(store)
	c.Dashboard = analytics.NewDashboardUseCase(store, c.Notifications, cfg.Report.Title, log.Component("dashboard"))
	c.Backup = backup.NewUseCase(store, log.Component("backup"))
	c.Sync = sheetsync.NewUseCase(store, exporter, c.Notifications, cfg.Sync.Timeout, log.Component("sync"))
	c.Printing = printing.NewUseCase(c.Dashboard, c.Products, pdfGenerator, pdfGenerator)
	return c, nil
}

func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger, c *Container) (repository.KeyValueStore, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		log.Warn().Msg("almacén en memoria: los datos se pierden al salir")
		return memory.NewKVStore(), nil
	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		c.closers = append(c.closers, pool.Close)
		repo := postgres.NewKVRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("esquema PostgreSQL: %w", err)
		}
		return repo, nil
	default:
		log.Info().Str("path", cfg.Store.Path).Msg("almacén en archivo")
		return filestore.NewKVStore(cfg.Store.Path), nil
	}
}
