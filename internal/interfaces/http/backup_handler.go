package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almoxarifado/internal/application/backup"
	"github.com/jhoicas/almoxarifado/internal/application/dto"
	"github.com/jhoicas/almoxarifado/internal/application/ports"
	"github.com/jhoicas/almoxarifado/internal/application/sheetsync"
	"github.com/jhoicas/almoxarifado/internal/infrastructure/notify"
)

// BackupHandler respaldo, restauración, limpieza, sincronización y avisos.
type BackupHandler struct {
	uc   *backup.UseCase
	sync *sheetsync.UseCase
	feed *notify.Feed
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *backup.UseCase, sync *sheetsync.UseCase, feed *notify.Feed) *BackupHandler {
	return &BackupHandler{uc: uc, sync: sync, feed: feed}
}

// Export godoc
// @Summary      Descargar respaldo JSON
// @Tags         backup
// @Produce      json
// @Success      200
// @Router       /api/backup [get]
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	data, err := h.uc.Export()
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(backup.FileName)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(data)
}

// Restore godoc
// @Summary      Restaurar desde un respaldo JSON (cuerpo = archivo)
// @Tags         backup
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/restore [post]
func (h *BackupHandler) Restore(c *fiber.Ctx) error {
	if err := h.uc.Restore(c.UserContext(), c.Body()); err != nil {
		return writeError(c, err)
	}
	h.feed.Notify(ports.NotifySuccess, "Dados restaurados!")
	return c.JSON(dto.MessageResponse{Message: "dados restaurados"})
}

// Clear POST /api/clear: elimina todos los datos (conserva el tema).
func (h *BackupHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.ClearAll(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	h.feed.Notify(ports.NotifyError, "Todos os dados foram excluídos!")
	return c.JSON(dto.MessageResponse{Message: "dados excluídos"})
}

// Sync POST /api/sync. Devuelve 202 enseguida; el resultado llega por /api/notifications.
func (h *BackupHandler) Sync(c *fiber.Ctx) error {
	if err := h.sync.Start(); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(dto.MessageResponse{Message: "sincronização iniciada"})
}

// Notifications GET /api/notifications?after=<seq>
func (h *BackupHandler) Notifications(c *fiber.Ctx) error {
	return c.JSON(h.feed.Since(int64(c.QueryInt("after", 0))))
}
