package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almoxarifado/internal/application/dto"
	"github.com/jhoicas/almoxarifado/internal/application/printing"
	"github.com/jhoicas/almoxarifado/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP del Catálogo.
type ProductHandler struct {
	uc       *usecase.ProductUseCase
	printing *printing.UseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, printing *printing.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc, printing: printing}
}

// Save godoc
// @Summary      Crear o actualizar producto (upsert)
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveProductRequest  true  "Datos del producto; id vacío = nuevo"
// @Success      201   {object}  dto.SaveProductResponse
// @Success      200   {object}  dto.SaveProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Save(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	if out.Created {
		return c.Status(fiber.StatusCreated).JSON(out)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar producto (sobrescribe todos los campos, incluida la cantidad)
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.SaveProductRequest  true  "Datos del producto"
// @Success      200   {object}  dto.SaveProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := h.uc.GetByID(id); err != nil {
		return writeError(c, err)
	}
	var in dto.SaveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	in.ID = id
	out, err := h.uc.Save(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         produtos
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  entity.Product
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	p, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(p)
}

// Available devuelve la cantidad disponible (GET /api/products/:id/available).
func (h *ProductHandler) Available(c *fiber.Ctx) error {
	out, err := h.uc.Available(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         produtos
// @Produce      json
// @Param        q   query  string  false  "Filtro por nome o id"
// @Success      200 {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(c.Query("q")))
}

// Delete godoc
// @Summary      Eliminar producto (sus movimientos se conservan)
// @Tags         produtos
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Labels godoc
// @Summary      Etiquetas con QR del producto (PDF)
// @Tags         produtos
// @Produce      application/pdf
// @Param        id     path   string  true   "ID del producto"
// @Param        count  query  int     false  "Cantidad de etiquetas" default(4)
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/labels [get]
func (h *ProductHandler) Labels(c *fiber.Ctx) error {
	pdf, err := h.printing.LabelsPDF(c.UserContext(), c.Params("id"), c.QueryInt("count", printing.DefaultLabelCopies))
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, "etiquetas-"+c.Params("id")+".pdf", pdf)
}
