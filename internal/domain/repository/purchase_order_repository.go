package repository

import (
	"context"

	"github.com/creatorhub/portal-api/internal/domain/entity"
)

// PurchaseOrderRepository define el puerto de persistencia para PurchaseOrder.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, order *entity.PurchaseOrder) error
	ListByUser(ctx context.Context, userID string) ([]*entity.PurchaseOrder, error)
}
