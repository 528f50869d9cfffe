package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almoxarifado/internal/application/dto"
	"github.com/jhoicas/almoxarifado/internal/domain"
)

// writeError traduce los errores de dominio a status HTTP + ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		status, code = fiber.StatusNotFound, "PRODUCT_NOT_FOUND"
	case errors.Is(err, domain.ErrInsufficientStock):
		status, code = fiber.StatusConflict, "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrInvalidRange):
		status, code = fiber.StatusBadRequest, "INVALID_RANGE"
	case errors.Is(err, domain.ErrImport):
		status, code = fiber.StatusBadRequest, "IMPORT_ERROR"
	case errors.Is(err, domain.ErrSync):
		status, code = fiber.StatusBadGateway, "SYNC_ERROR"
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
