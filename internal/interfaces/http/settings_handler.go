package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almoxarifado/internal/application/dto"
	"github.com/jhoicas/almoxarifado/internal/application/usecase"
)

// SettingsHandler preferencias del usuario.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get GET /api/config
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.Get())
}

// Update PUT /api/config (campos ausentes no cambian)
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ToggleTheme POST /api/config/theme
func (h *SettingsHandler) ToggleTheme(c *fiber.Ctx) error {
	out, err := h.uc.ToggleTheme(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
