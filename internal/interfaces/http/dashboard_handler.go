package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/almoxarifado/internal/application/analytics"
	"github.com/jhoicas/almoxarifado/internal/application/inventory"
)

// DashboardHandler maneja los endpoints del tablero.
type DashboardHandler struct {
	uc            *appanalytics.DashboardUseCase
	replenishment *inventory.ReplenishmentUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, replenishment *inventory.ReplenishmentUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, replenishment: replenishment}
}

// GetSummary devuelve totales, alertas y serie.
// GET /api/dashboard
//
// Si hay productos con bajo stock emite un aviso (como máximo uno cada 24 h).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

// GetLowStock GET /api/dashboard/low-stock
func (h *DashboardHandler) GetLowStock(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetLowStock())
}

// GetSeries GET /api/dashboard/series
func (h *DashboardHandler) GetSeries(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetSeries())
}

// GetReplenishmentList GET /api/dashboard/replenishment
func (h *DashboardHandler) GetReplenishmentList(c *fiber.Ctx) error {
	return c.JSON(h.replenishment.GenerateReplenishmentList())
}
