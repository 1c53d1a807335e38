package repository

import (
	"context"

	"github.com/creatorhub/portal-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice (DIP).
// Solo lectura desde la API; Create existe únicamente para el seeder.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Invoice, error)
}
