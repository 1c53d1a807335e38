package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/creatorhub/portal-api/internal/application/account"
	"github.com/creatorhub/portal-api/internal/application/auth"
	appmembership "github.com/creatorhub/portal-api/internal/application/membership"
	"github.com/creatorhub/portal-api/internal/application/notify"
	"github.com/creatorhub/portal-api/internal/application/settings"
	infrapayments "github.com/creatorhub/portal-api/internal/infrastructure/payments"
	infrapdf "github.com/creatorhub/portal-api/internal/infrastructure/pdf"
	"github.com/creatorhub/portal-api/internal/infrastructure/postgres"
	infraredis "github.com/creatorhub/portal-api/internal/infrastructure/redis"
	httpRouter "github.com/creatorhub/portal-api/internal/interfaces/http"
	"github.com/creatorhub/portal-api/pkg/config"
	"github.com/creatorhub/portal-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	redisClient, err := infraredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisClient.Close()

	userRepo := postgres.NewUserRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)

	toastStore := infraredis.NewToastStore(redisClient)
	toasts := notify.NewService(toastStore, log)

	statementGen := infrapdf.NewMarotoStatementGenerator(cfg.App.Name)
	paymentGateway := infrapayments.NewCheckoutClient(cfg.Payments.BaseURL, cfg.Payments.APIKey)

	accountUC := account.NewUseCase(invoiceRepo, projectRepo, orderRepo, userRepo, statementGen)
	membershipUC := appmembership.NewUseCase(userRepo, paymentGateway, toasts, log)
	settingsUC := settings.NewUseCase(userRepo, toasts, log)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Creator Portal API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		AccountUC:    accountUC,
		MembershipUC: membershipUC,
		SettingsUC:   settingsUC,
		Toasts:       toasts,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
