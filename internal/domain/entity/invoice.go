package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura del creador.
const (
	InvoiceStatusPaid    = "paid"
	InvoiceStatusPending = "pending"
	InvoiceStatusOverdue = "overdue"
)

// Invoice representa una factura emitida al creador. Inmutable una vez sembrada:
// no existe endpoint de creación ni edición, solo lectura y agregados.
type Invoice struct {
	ID            string
	UserID        string
	InvoiceNumber string // ej. INV-2026-001
	Amount        decimal.Decimal // no negativo
	Date          time.Time
	Status        string // paid, pending, overdue
	Description   string
	CreatedAt     time.Time
}
