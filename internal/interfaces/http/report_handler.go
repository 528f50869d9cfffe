package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almoxarifado/internal/application/printing"
)

// ReportHandler reportes imprimibles en PDF.
type ReportHandler struct {
	uc *printing.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *printing.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Inventory GET /api/reports/inventory
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	pdf, err := h.uc.InventoryPDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, "inventario.pdf", pdf)
}

// LowStock GET /api/reports/low-stock
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	pdf, err := h.uc.LowStockPDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, "baixo-estoque.pdf", pdf)
}

// Movements godoc
// @Summary      Reporte PDF de movimientos del período
// @Tags         relatorios
// @Produce      application/pdf
// @Param        start  query  string  true  "Fecha inicial YYYY-MM-DD"
// @Param        end    query  string  true  "Fecha final YYYY-MM-DD"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/movements [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	pdf, err := h.uc.MovementsPDF(c.UserContext(), c.Query("start"), c.Query("end"))
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, "movimentacoes.pdf", pdf)
}

func sendPDF(c *fiber.Ctx, name string, pdf []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+name+`"`)
	return c.Send(pdf)
}
