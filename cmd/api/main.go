package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/auth"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/chat"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/licensing"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/reporting"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/usecase"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/infrastructure/postgres"
	httpRouter "github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/interfaces/http"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/pkg/config"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	orderRepo := postgres.NewServiceOrderRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	teamRepo := postgres.NewTeamMemberRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	appointmentRepo := postgres.NewAppointmentRepository(pool)
	chatRepo := postgres.NewChatMessageRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	jwtCfg := licensing.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}
	licensingUC := licensing.NewUseCase(companyRepo, userRepo, txRunner, jwtCfg, cfg.License.TrialDays)
	authUC := auth.NewUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	reportingUC := reporting.NewUseCase(orderRepo, transactionRepo, teamRepo, customerRepo, companyRepo)
	chatStream := chat.NewStream(chatRepo, chat.NewBroker())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		LicensingUC:   licensingUC,
		ReportingUC:   reportingUC,
		CompanyUC:     usecase.NewCompanyUseCase(companyRepo),
		ServiceOrders: usecase.NewServiceOrderUseCase(orderRepo),
		Customers:     usecase.NewCustomerUseCase(customerRepo),
		Products:      usecase.NewProductUseCase(productRepo),
		Team:          usecase.NewTeamUseCase(teamRepo),
		Transactions:  usecase.NewTransactionUseCase(transactionRepo),
		Appointments:  usecase.NewAppointmentUseCase(appointmentRepo),
		ChatStream:    chatStream,
		Companies:     companyRepo,
		Users:         userRepo,
		JWTSecret:     cfg.JWT.Secret,
		Log:           log.Zerolog(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
