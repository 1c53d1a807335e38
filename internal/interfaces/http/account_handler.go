package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/creatorhub/portal-api/internal/application/account"
	"github.com/creatorhub/portal-api/internal/application/dto"
	"github.com/creatorhub/portal-api/internal/domain"
)

// AccountHandler maneja los endpoints de la pantalla de cuenta: facturas,
// proyectos, órdenes de compra y resumen financiero del creador.
type AccountHandler struct {
	uc *account.UseCase
}

// NewAccountHandler construye el handler de cuenta.
func NewAccountHandler(uc *account.UseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// ListInvoices godoc
// @Summary      Listar facturas del creador
// @Tags         account
// @Produce      json
// @Param        status  query  string  false  "filtro: all | paid | pending | overdue"
// @Success      200  {array}   dto.InvoiceResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/account/invoices [get]
func (h *AccountHandler) ListInvoices(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id no encontrado en el token"})
	}
	status := c.Query("status", account.StatusAll)
	invoices, err := h.uc.ListInvoices(c.Context(), userID, status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(invoices)
}

// ListProjects godoc
// @Summary      Listar proyectos del creador
// @Tags         account
// @Produce      json
// @Success      200  {array}   dto.ProjectResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/account/projects [get]
func (h *AccountHandler) ListProjects(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id no encontrado en el token"})
	}
	projects, err := h.uc.ListProjects(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(projects)
}

// ListPurchaseOrders godoc
// @Summary      Listar órdenes de compra del creador
// @Tags         account
// @Produce      json
// @Success      200  {array}   dto.PurchaseOrderResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/account/purchase-orders [get]
func (h *AccountHandler) ListPurchaseOrders(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id no encontrado en el token"})
	}
	orders, err := h.uc.ListPurchaseOrders(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(orders)
}

// GetSummary devuelve los totales agregados de la cuenta.
// GET /api/account/summary
//
// Respuesta: AccountSummaryDTO (total_invoiced, total_paid, total_pending,
// total_budget, total_spent, total_purchases). Los totales se calculan en
// el servidor sobre todas las facturas, proyectos y órdenes del creador.
func (h *AccountHandler) GetSummary(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id no encontrado en el token"})
	}
	summary, err := h.uc.GetSummary(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}

// InvoiceStatement godoc
// @Summary      Descargar el estado de cuenta de una factura en PDF
// @Tags         account
// @Produce      application/pdf
// @Param        id   path      string  true  "ID de la factura"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/account/invoices/{id}/pdf [get]
func (h *AccountHandler) InvoiceStatement(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id no encontrado en el token"})
	}
	invoiceID := c.Params("id")
	pdfBytes, err := h.uc.InvoiceStatement(c.Context(), userID, invoiceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "estado-cuenta-"+invoiceID+".pdf"))
	return c.Send(pdfBytes)
}
