package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creatorhub/portal-api/internal/application/dto"
	"github.com/creatorhub/portal-api/internal/application/notify"
)

// ToastHandler expone las notificaciones efímeras pendientes del creador.
// Las notificaciones expiran solas en el almacén; el cliente solo consulta
// las vigentes y puede descartarlas antes de tiempo.
type ToastHandler struct {
	svc *notify.Service
}

// NewToastHandler construye el handler de notificaciones.
func NewToastHandler(svc *notify.Service) *ToastHandler {
	return &ToastHandler{svc: svc}
}

// List godoc
// @Summary      Listar notificaciones vigentes
// @Tags         toasts
// @Produce      json
// @Success      200  {array}   entity.Toast
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/toasts [get]
func (h *ToastHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id no encontrado en el token"})
	}
	toasts, err := h.svc.List(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toasts)
}

// Dismiss godoc
// @Summary      Descartar una notificación antes de que expire
// @Tags         toasts
// @Param        id  path  string  true  "ID de la notificación"
// @Success      204  "descartada"
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/toasts/{id} [delete]
func (h *ToastHandler) Dismiss(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id no encontrado en el token"})
	}
	if err := h.svc.Dismiss(c.Context(), userID, c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
