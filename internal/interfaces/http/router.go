package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almoxarifado/internal/application/analytics"
	"github.com/jhoicas/almoxarifado/internal/application/backup"
	"github.com/jhoicas/almoxarifado/internal/application/inventory"
	"github.com/jhoicas/almoxarifado/internal/application/printing"
	"github.com/jhoicas/almoxarifado/internal/application/sheetsync"
	"github.com/jhoicas/almoxarifado/internal/application/usecase"
	"github.com/jhoicas/almoxarifado/internal/infrastructure/notify"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	SettingsUC       *usecase.SettingsUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	Replenishment    *inventory.ReplenishmentUseCase
	DashboardUC      *analytics.DashboardUseCase
	BackupUC         *backup.UseCase
	SyncUC           *sheetsync.UseCase
	PrintingUC       *printing.UseCase
	Notifications    *notify.Feed
}

// Router registra las rutas de la API. Sin autenticación: el servidor es local y de un solo usuario.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.PrintingUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Save)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/available", productHandler.Available)
	products.Get("/:id/labels", productHandler.Labels)

	// Movements
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.DashboardUC)
	movements.Post("/", movementHandler.Register)
	movements.Get("/", movementHandler.List)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Replenishment)
	dashboard.Get("/", dashboardHandler.GetSummary)
	dashboard.Get("/low-stock", dashboardHandler.GetLowStock)
	dashboard.Get("/series", dashboardHandler.GetSeries)
	dashboard.Get("/replenishment", dashboardHandler.GetReplenishmentList)

	// Config
	cfg := api.Group("/config")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	cfg.Get("/", settingsHandler.Get)
	cfg.Put("/", settingsHandler.Update)
	cfg.Post("/theme", settingsHandler.ToggleTheme)

	// Backup / restore / clear / sync / notifications
	backupHandler := NewBackupHandler(deps.BackupUC, deps.SyncUC, deps.Notifications)
	api.Get("/backup", backupHandler.Export)
	api.Post("/restore", backupHandler.Restore)
	api.Post("/clear", backupHandler.Clear)
	api.Post("/sync", backupHandler.Sync)
	api.Get("/notifications", backupHandler.Notifications)

	// Reports (PDF)
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.PrintingUC)
	reports.Get("/inventory", reportHandler.Inventory)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/movements", reportHandler.Movements)
}
