package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/creatorhub/portal-api/internal/domain/entity"
	"github.com/creatorhub/portal-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL.
type InvoiceRepo struct {
	db DB
}

// NewInvoiceRepository construye el adaptador de persistencia para facturas.
func NewInvoiceRepository(db DB) *InvoiceRepo {
	return &InvoiceRepo{db: db}
}

// Create persiste una factura (solo lo usa el seeder; la API no crea facturas).
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, user_id, invoice_number, amount, date, status, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		inv.ID, inv.UserID, inv.InvoiceNumber, inv.Amount, inv.Date, inv.Status, inv.Description, inv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID. Devuelve (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `
		SELECT id, user_id, invoice_number, amount, date, status, description, created_at
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.db.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.UserID, &inv.InvoiceNumber, &inv.Amount, &inv.Date, &inv.Status, &inv.Description, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice by id: %w", err)
	}
	return &inv, nil
}

// ListByUser lista las facturas del usuario, más recientes primero.
func (r *InvoiceRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Invoice, error) {
	query := `
		SELECT id, user_id, invoice_number, amount, date, status, description, created_at
		FROM invoices WHERE user_id = $1 ORDER BY date DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.UserID, &inv.InvoiceNumber, &inv.Amount, &inv.Date, &inv.Status, &inv.Description, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
