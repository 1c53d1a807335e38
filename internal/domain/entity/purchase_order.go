package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	PurchaseOrderStatusPending    = "pending"
	PurchaseOrderStatusProcessing = "processing"
	PurchaseOrderStatusDelivered  = "delivered"
	PurchaseOrderStatusCompleted  = "completed"
)

// PurchaseOrder representa una orden de compra del creador.
type PurchaseOrder struct {
	ID        string
	UserID    string
	ItemName  string
	Quantity  int // entero positivo
	UnitPrice decimal.Decimal
	Date      time.Time
	Status    string // pending, processing, delivered, completed
	Category  string // etiqueta libre, ej. "Equipment", "Software"
	CreatedAt time.Time
}

// Total devuelve unitPrice × quantity.
func (p *PurchaseOrder) Total() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
