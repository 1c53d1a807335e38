// Package account contiene los casos de uso de la pantalla de cuenta:
// listados de facturas, proyectos y órdenes de compra, el filtro por estado
// de la tabla de facturación y los totales agregados.
package account

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/creatorhub/portal-api/internal/application/dto"
	"github.com/creatorhub/portal-api/internal/domain"
	"github.com/creatorhub/portal-api/internal/domain/entity"
	"github.com/creatorhub/portal-api/internal/domain/repository"
)

// StatusAll valor del filtro que deja pasar todas las facturas.
const StatusAll = "all"

// UseCase agrupa las operaciones de la pantalla de cuenta.
//
// Todos los agregados son puros: se recalculan en cada llamada desde las
// listas actuales, sin caché ni actualización incremental.
type UseCase struct {
	invoiceRepo repository.InvoiceRepository
	projectRepo repository.ProjectRepository
	orderRepo   repository.PurchaseOrderRepository
	userRepo    repository.UserRepository
	pdfGen      StatementPDFGenerator
}

// NewUseCase construye el caso de uso con los puertos de persistencia.
func NewUseCase(
	invoiceRepo repository.InvoiceRepository,
	projectRepo repository.ProjectRepository,
	orderRepo repository.PurchaseOrderRepository,
	userRepo repository.UserRepository,
	pdfGen StatementPDFGenerator,
) *UseCase {
	return &UseCase{
		invoiceRepo: invoiceRepo,
		projectRepo: projectRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		pdfGen:      pdfGen,
	}
}

// ListInvoices lista las facturas del usuario con filtro opcional por estado.
// status vacío o "all" deja pasar todo; cualquier otro valor filtra por
// igualdad sobre el campo Status (predicado puro).
func (uc *UseCase) ListInvoices(ctx context.Context, userID, status string) ([]dto.InvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		if status != "" && status != StatusAll && inv.Status != status {
			continue
		}
		out = append(out, dto.InvoiceResponse{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			Amount:        inv.Amount,
			Date:          inv.Date,
			Status:        inv.Status,
			Description:   inv.Description,
		})
	}
	return out, nil
}

// ListProjects lista los proyectos del usuario.
func (uc *UseCase) ListProjects(ctx context.Context, userID string) ([]dto.ProjectResponse, error) {
	projects, err := uc.projectRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, dto.ProjectResponse{
			ID:        p.ID,
			Name:      p.Name,
			Status:    p.Status,
			Budget:    p.Budget,
			Spent:     p.Spent,
			StartDate: p.StartDate,
			DueDate:   p.DueDate,
			Progress:  p.Progress,
		})
	}
	return out, nil
}

// ListPurchaseOrders lista las órdenes de compra del usuario con su total.
func (uc *UseCase) ListPurchaseOrders(ctx context.Context, userID string) ([]dto.PurchaseOrderResponse, error) {
	orders, err := uc.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.PurchaseOrderResponse{
			ID:        o.ID,
			ItemName:  o.ItemName,
			Quantity:  o.Quantity,
			UnitPrice: o.UnitPrice,
			Total:     o.Total(),
			Date:      o.Date,
			Status:    o.Status,
			Category:  o.Category,
		})
	}
	return out, nil
}

// GetSummary construye los totales de la pantalla de cuenta.
//
// Tres lecturas en paralelo:
//  1. ListByUser(facturas)  → TotalInvoiced / TotalPaid / TotalPending
//  2. ListByUser(proyectos) → TotalBudget / TotalSpent
//  3. ListByUser(órdenes)   → TotalPurchases
func (uc *UseCase) GetSummary(ctx context.Context, userID string) (*dto.AccountSummaryDTO, error) {
	type invoicesResult struct {
		list []*entity.Invoice
		err  error
	}
	type projectsResult struct {
		list []*entity.Project
		err  error
	}
	type ordersResult struct {
		list []*entity.PurchaseOrder
		err  error
	}

	invCh := make(chan invoicesResult, 1)
	projCh := make(chan projectsResult, 1)
	ordCh := make(chan ordersResult, 1)

	go func() {
		list, err := uc.invoiceRepo.ListByUser(ctx, userID)
		invCh <- invoicesResult{list, err}
	}()
	go func() {
		list, err := uc.projectRepo.ListByUser(ctx, userID)
		projCh <- projectsResult{list, err}
	}()
	go func() {
		list, err := uc.orderRepo.ListByUser(ctx, userID)
		ordCh <- ordersResult{list, err}
	}()

	inv := <-invCh
	proj := <-projCh
	ord := <-ordCh

	if inv.err != nil {
		return nil, fmt.Errorf("summary: facturas: %w", inv.err)
	}
	if proj.err != nil {
		return nil, fmt.Errorf("summary: proyectos: %w", proj.err)
	}
	if ord.err != nil {
		return nil, fmt.Errorf("summary: órdenes de compra: %w", ord.err)
	}

	summary := &dto.AccountSummaryDTO{
		TotalInvoiced:  decimal.Zero,
		TotalPaid:      decimal.Zero,
		TotalPending:   decimal.Zero,
		TotalBudget:    decimal.Zero,
		TotalSpent:     decimal.Zero,
		TotalPurchases: decimal.Zero,
	}
	for _, i := range inv.list {
		summary.TotalInvoiced = summary.TotalInvoiced.Add(i.Amount)
		switch i.Status {
		case entity.InvoiceStatusPaid:
			summary.TotalPaid = summary.TotalPaid.Add(i.Amount)
		case entity.InvoiceStatusPending:
			summary.TotalPending = summary.TotalPending.Add(i.Amount)
		}
	}
	for _, p := range proj.list {
		summary.TotalBudget = summary.TotalBudget.Add(p.Budget)
		summary.TotalSpent = summary.TotalSpent.Add(p.Spent)
	}
	for _, o := range ord.list {
		summary.TotalPurchases = summary.TotalPurchases.Add(o.Total())
	}
	return summary, nil
}

// InvoiceStatement genera el PDF del estado de cuenta de una factura del usuario.
// Devuelve ErrNotFound si la factura no existe o pertenece a otro usuario.
func (uc *UseCase) InvoiceStatement(ctx context.Context, userID, invoiceID string) ([]byte, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil || invoice.UserID != userID {
		return nil, domain.ErrNotFound
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return uc.pdfGen.GenerateStatement(ctx, user, invoice)
}
