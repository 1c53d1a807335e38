package postgres

import (
	"context"
	"fmt"

	"github.com/creatorhub/portal-api/internal/domain/entity"
	"github.com/creatorhub/portal-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre PostgreSQL.
type PurchaseOrderRepo struct {
	db DB
}

// NewPurchaseOrderRepository construye el adaptador de persistencia para órdenes de compra.
func NewPurchaseOrderRepository(db DB) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{db: db}
}

// Create persiste una orden de compra.
func (r *PurchaseOrderRepo) Create(ctx context.Context, o *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (id, user_id, item_name, quantity, unit_price, date, status, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		o.ID, o.UserID, o.ItemName, o.Quantity, o.UnitPrice, o.Date, o.Status, o.Category, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// ListByUser lista las órdenes de compra del usuario, más recientes primero.
func (r *PurchaseOrderRepo) ListByUser(ctx context.Context, userID string) ([]*entity.PurchaseOrder, error) {
	query := `
		SELECT id, user_id, item_name, quantity, unit_price, date, status, category, created_at
		FROM purchase_orders WHERE user_id = $1 ORDER BY date DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := rows.Scan(&o.ID, &o.UserID, &o.ItemName, &o.Quantity, &o.UnitPrice, &o.Date, &o.Status, &o.Category, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
