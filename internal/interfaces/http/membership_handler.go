package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/creatorhub/portal-api/internal/application/dto"
	appmembership "github.com/creatorhub/portal-api/internal/application/membership"
	"github.com/creatorhub/portal-api/internal/domain"
)

// MembershipHandler maneja la comparación de niveles, el progreso de puntos
// de fidelidad y el upgrade de membresía.
type MembershipHandler struct {
	uc *appmembership.UseCase
}

// NewMembershipHandler construye el handler de membresía.
func NewMembershipHandler(uc *appmembership.UseCase) *MembershipHandler {
	return &MembershipHandler{uc: uc}
}

// ListTiers godoc
// @Summary      Listar los niveles de membresía con su elegibilidad
// @Tags         membership
// @Produce      json
// @Success      200  {array}   dto.TierCardDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/membership/tiers [get]
func (h *MembershipHandler) ListTiers(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id no encontrado en el token"})
	}
	tiers, err := h.uc.ListTiers(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(tiers)
}

// GetProgress godoc
// @Summary      Progreso de puntos hacia el siguiente nivel
// @Tags         membership
// @Produce      json
// @Success      200  {object}  dto.TierProgressDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/membership/progress [get]
func (h *MembershipHandler) GetProgress(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id no encontrado en el token"})
	}
	progress, err := h.uc.GetProgress(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(progress)
}

// Upgrade godoc
// @Summary      Mejorar la membresía a un nivel superior
// @Tags         membership
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpgradeRequest  true  "target_tier"
// @Success      200   {object}  dto.ProfileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      402   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/membership/upgrade [post]
func (h *MembershipHandler) Upgrade(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id no encontrado en el token"})
	}
	var in dto.UpgradeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.TargetTier == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "target_tier es requerido"})
	}
	profile, err := h.uc.Upgrade(c.Context(), userID, in.TargetTier)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownTier):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_TIER", Message: "el nivel indicado no existe"})
		case errors.Is(err, domain.ErrTierNotUpgradeable):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_UPGRADEABLE", Message: "solo se puede mejorar a un nivel superior al actual"})
		case errors.Is(err, domain.ErrPaymentDeclined):
			return c.Status(fiber.StatusPaymentRequired).JSON(dto.ErrorResponse{Code: "PAYMENT_DECLINED", Message: "el pago fue rechazado"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(profile)
}
