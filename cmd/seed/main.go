// seed puebla la base con una cuenta demo de creador: usuario premium con
// puntos de lealtad, facturas en varios estados, proyectos con presupuesto y
// órdenes de compra. La carga es atómica (una sola transacción) e idempotente:
// si el email demo ya existe, no hace nada.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/creatorhub/portal-api/internal/domain/entity"
	"github.com/creatorhub/portal-api/internal/domain/repository"
	"github.com/creatorhub/portal-api/internal/infrastructure/postgres"
	"github.com/creatorhub/portal-api/pkg/config"
	"github.com/creatorhub/portal-api/pkg/logger"
)

const (
	demoEmail    = "demo@creatorhub.io"
	demoPassword = "demo-password-123"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.InitSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}
	log.Info().Msg("esquema verificado")

	runner := postgres.NewTxRunner(pool)
	err = runner.Run(ctx, func(
		userRepo repository.UserRepository,
		invoiceRepo repository.InvoiceRepository,
		projectRepo repository.ProjectRepository,
		orderRepo repository.PurchaseOrderRepository,
	) error {
		existing, err := userRepo.GetByEmail(ctx, demoEmail)
		if err != nil {
			return err
		}
		if existing != nil {
			log.Info().Str("email", demoEmail).Msg("cuenta demo ya existe, nada que hacer")
			return nil
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		now := time.Now()
		user := &entity.User{
			ID:            uuid.New().String(),
			Email:         demoEmail,
			PasswordHash:  string(hash),
			Name:          "Alexandra Ríos",
			Phone:         "+57 300 555 0142",
			Bio:           "Creadora de contenido de diseño y fotografía.",
			Tier:          entity.TierPremium,
			LoyaltyPoints: 2500,
			Preferences:   entity.DefaultPreferences(),
			Status:        "active",
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}

		for _, inv := range demoInvoices(user.ID, now) {
			if err := invoiceRepo.Create(ctx, inv); err != nil {
				return err
			}
		}
		for _, p := range demoProjects(user.ID, now) {
			if err := projectRepo.Create(ctx, p); err != nil {
				return err
			}
		}
		for _, o := range demoOrders(user.ID, now) {
			if err := orderRepo.Create(ctx, o); err != nil {
				return err
			}
		}

		log.Info().Str("user_id", user.ID).Msg("cuenta demo sembrada")
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar datos demo")
	}

	log.Info().Msg("seed completado")
}

func demoInvoices(userID string, now time.Time) []*entity.Invoice {
	mk := func(num string, amount float64, daysAgo int, status, desc string) *entity.Invoice {
		return &entity.Invoice{
			ID:            uuid.New().String(),
			UserID:        userID,
			InvoiceNumber: num,
			Amount:        decimal.NewFromFloat(amount),
			Date:          now.AddDate(0, 0, -daysAgo),
			Status:        status,
			Description:   desc,
			CreatedAt:     now,
		}
	}
	return []*entity.Invoice{
		mk("INV-2026-001", 2500.00, 60, entity.InvoiceStatusPaid, "Campaña de marca — enero"),
		mk("INV-2026-002", 1800.00, 30, entity.InvoiceStatusPaid, "Sesión fotográfica de producto"),
		mk("INV-2026-003", 3200.00, 5, entity.InvoiceStatusPending, "Serie de video — temporada 2"),
		mk("INV-2026-004", 950.00, 90, entity.InvoiceStatusOverdue, "Licencias de material gráfico"),
	}
}

func demoProjects(userID string, now time.Time) []*entity.Project {
	mk := func(name, status string, budget, spent float64, progress, startDaysAgo, dueInDays int) *entity.Project {
		return &entity.Project{
			ID:        uuid.New().String(),
			UserID:    userID,
			Name:      name,
			Status:    status,
			Budget:    decimal.NewFromFloat(budget),
			Spent:     decimal.NewFromFloat(spent),
			StartDate: now.AddDate(0, 0, -startDaysAgo),
			DueDate:   now.AddDate(0, 0, dueInDays),
			Progress:  progress,
			CreatedAt: now,
		}
	}
	return []*entity.Project{
		mk("Rediseño del portafolio", entity.ProjectStatusActive, 5000, 2100, 40, 45, 30),
		mk("Documental corto", entity.ProjectStatusActive, 12000, 11500, 35, 120, 15),
		mk("Catálogo 2025", entity.ProjectStatusCompleted, 3000, 2950, 100, 200, -60),
	}
}

func demoOrders(userID string, now time.Time) []*entity.PurchaseOrder {
	mk := func(item string, qty int, unitPrice float64, daysAgo int, status, category string) *entity.PurchaseOrder {
		return &entity.PurchaseOrder{
			ID:        uuid.New().String(),
			UserID:    userID,
			ItemName:  item,
			Quantity:  qty,
			UnitPrice: decimal.NewFromFloat(unitPrice),
			Date:      now.AddDate(0, 0, -daysAgo),
			Status:    status,
			Category:  category,
			CreatedAt: now,
		}
	}
	return []*entity.PurchaseOrder{
		mk("Micrófono de solapa", 2, 99.99, 20, entity.PurchaseOrderStatusDelivered, "Equipment"),
		mk("Suscripción editor de video", 1, 109.99, 10, entity.PurchaseOrderStatusCompleted, "Software"),
		mk("Tarjetas SD 128GB", 3, 24.50, 3, entity.PurchaseOrderStatusProcessing, "Equipment"),
	}
}
