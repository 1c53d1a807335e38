package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creatorhub/portal-api/internal/application/account"
	"github.com/creatorhub/portal-api/internal/application/auth"
	appmembership "github.com/creatorhub/portal-api/internal/application/membership"
	"github.com/creatorhub/portal-api/internal/application/notify"
	"github.com/creatorhub/portal-api/internal/application/settings"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	AccountUC    *account.UseCase
	MembershipUC *appmembership.UseCase
	SettingsUC   *settings.UseCase
	Toasts       *notify.Service
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Cuenta: facturas, proyectos, órdenes y resumen (protegido)
	accountGroup := protected.Group("/account")
	accountHandler := NewAccountHandler(deps.AccountUC)
	accountGroup.Get("/invoices", accountHandler.ListInvoices)
	accountGroup.Get("/invoices/:id/pdf", accountHandler.InvoiceStatement)
	accountGroup.Get("/projects", accountHandler.ListProjects)
	accountGroup.Get("/purchase-orders", accountHandler.ListPurchaseOrders)
	accountGroup.Get("/summary", accountHandler.GetSummary)

	// Membresía: niveles, progreso y upgrade (protegido)
	membershipGroup := protected.Group("/membership")
	membershipHandler := NewMembershipHandler(deps.MembershipUC)
	membershipGroup.Get("/tiers", membershipHandler.ListTiers)
	membershipGroup.Get("/progress", membershipHandler.GetProgress)
	membershipGroup.Post("/upgrade", membershipHandler.Upgrade)

	// Configuración: perfil, preferencias y contraseña (protegido)
	settingsGroup := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settingsGroup.Get("/profile", settingsHandler.GetProfile)
	settingsGroup.Put("/profile", settingsHandler.UpdateProfile)
	settingsGroup.Patch("/preferences", settingsHandler.SetPreference)
	settingsGroup.Put("/password", settingsHandler.ChangePassword)

	// Notificaciones efímeras (protegido)
	toastGroup := protected.Group("/toasts")
	toastHandler := NewToastHandler(deps.Toasts)
	toastGroup.Get("/", toastHandler.List)
	toastGroup.Delete("/:id", toastHandler.Dismiss)
}
