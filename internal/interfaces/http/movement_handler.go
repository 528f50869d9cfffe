package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almoxarifado/internal/application/analytics"
	"github.com/jhoicas/almoxarifado/internal/application/dto"
	"github.com/jhoicas/almoxarifado/internal/application/inventory"
)

// MovementHandler maneja las peticiones HTTP de movimientos de stock.
type MovementHandler struct {
	uc        *inventory.RegisterMovementUseCase
	dashboard *analytics.DashboardUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.RegisterMovementUseCase, dashboard *analytics.DashboardUseCase) *MovementHandler {
	return &MovementHandler{uc: uc, dashboard: dashboard}
}

// Register godoc
// @Summary      Registrar movimiento (entrada / saida)
// @Tags         movimentacoes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "produto_id, tipo, quantidade, motivo, documento, usuario"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.RegisterMovementFromRequest(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Movimientos del período con nombre del producto
// @Tags         movimentacoes
// @Produce      json
// @Param        start  query  string  true  "Fecha inicial YYYY-MM-DD"
// @Param        end    query  string  true  "Fecha final YYYY-MM-DD"
// @Success      200  {object}  dto.MovementReport
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	rep, err := h.dashboard.GetMovementReport(c.Query("start"), c.Query("end"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rep)
}
