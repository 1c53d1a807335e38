package membership

import (
	"context"

	"github.com/shopspring/decimal"
)

// CheckoutRequest datos que se entregan al colaborador de pagos para el
// flujo de upgrade: identidad del usuario, nivel actual y nivel destino.
type CheckoutRequest struct {
	UserID      string
	Email       string
	Name        string
	CurrentTier string
	TargetTier  string
	Amount      decimal.Decimal // precio mensual del nivel destino
}

// PaymentGateway conduce el flujo de pago externo. Un retorno nil equivale al
// callback de éxito; cualquier error equivale al de fallo (el caso de uso no
// distingue causas más allá de "el pago no se completó").
type PaymentGateway interface {
	Charge(ctx context.Context, req CheckoutRequest) error
}
