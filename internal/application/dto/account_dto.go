package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceResponse una factura en el listado de la pantalla de cuenta.
type InvoiceResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Status        string          `json:"status"` // paid, pending, overdue
	Description   string          `json:"description"`
}

// ProjectResponse un proyecto en el listado de la pantalla de cuenta.
// Progress es independiente de Budget/Spent y puede contradecirlos.
type ProjectResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Status    string          `json:"status"` // active, completed, pending
	Budget    decimal.Decimal `json:"budget"`
	Spent     decimal.Decimal `json:"spent"`
	StartDate time.Time       `json:"start_date"`
	DueDate   time.Time       `json:"due_date"`
	Progress  int             `json:"progress"` // 0-100
}

// PurchaseOrderResponse una orden de compra en el listado, con su total calculado.
type PurchaseOrderResponse struct {
	ID        string          `json:"id"`
	ItemName  string          `json:"item_name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"` // unit_price × quantity
	Date      time.Time       `json:"date"`
	Status    string          `json:"status"` // pending, processing, delivered, completed
	Category  string          `json:"category"`
}

// AccountSummaryDTO respuesta de GET /api/account/summary.
// Todos los totales se recalculan en cada llamada desde las listas actuales;
// no hay caché ni actualización incremental.
type AccountSummaryDTO struct {
	TotalInvoiced  decimal.Decimal `json:"total_invoiced"`  // Σ montos de todas las facturas
	TotalPaid      decimal.Decimal `json:"total_paid"`      // Σ restringida a status=paid
	TotalPending   decimal.Decimal `json:"total_pending"`   // Σ restringida a status=pending
	TotalBudget    decimal.Decimal `json:"total_budget"`    // Σ presupuestos de proyectos
	TotalSpent     decimal.Decimal `json:"total_spent"`     // Σ gastado en proyectos
	TotalPurchases decimal.Decimal `json:"total_purchases"` // Σ unit_price × quantity
}
