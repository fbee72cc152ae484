package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/auth"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/chat"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/licensing"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/reporting"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/usecase"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/license"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	LicensingUC   *licensing.UseCase
	ReportingUC   *reporting.UseCase
	CompanyUC     *usecase.CompanyUseCase
	ServiceOrders *usecase.ServiceOrderUseCase
	Customers     *usecase.CustomerUseCase
	Products      *usecase.ProductUseCase
	Team          *usecase.TeamUseCase
	Transactions  *usecase.TransactionUseCase
	Appointments  *usecase.AppointmentUseCase
	ChatStream    *chat.Stream
	Companies     companySource
	Users         userSource
	JWTSecret     string
	Log           zerolog.Logger
}

// Router registra as rotas da API. Cada grupo de tenant passa pelo gate de
// licença da sua página; dashboard e settings continuam acessíveis com a
// licença vencida, nada fica acessível com a conta bloqueada.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.LicensingUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/session", AuthMiddleware(deps.JWTSecret), authHandler.Session)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	gate := func(page string) fiber.Handler { return RequirePage(page, deps.Companies) }

	// Console master (protegido, só MASTER; sem gate de licença)
	master := protected.Group("/master", RequireRole(entity.RoleMaster))
	masterHandler := NewMasterHandler(deps.LicensingUC, deps.ReportingUC)
	master.Get("/companies", masterHandler.ListCompanies)
	master.Get("/overview", masterHandler.Overview)
	master.Post("/companies/:id/block", masterHandler.Block)
	master.Post("/companies/:id/unblock", masterHandler.Unblock)
	master.Post("/companies/:id/renew", masterHandler.Renew)
	master.Post("/companies/:id/impersonate", masterHandler.Impersonate)

	// Empresa do tenant (settings é página isenta: segue editável vencida)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	company := protected.Group("/company", RequireRole(entity.RoleAdmin, entity.RoleMechanic), gate(license.PageSettings))
	company.Get("/", companyHandler.Get)
	company.Put("/settings", companyHandler.UpdateSettings)

	// Dashboard (página isenta)
	reportHandler := NewReportHandler(deps.ReportingUC)
	dashboard := protected.Group("/dashboard", gate(license.PageDashboard))
	dashboard.Get("/stats", reportHandler.Stats)

	// Relatórios (gated)
	reports := protected.Group("/reports", gate(license.PageReports))
	reports.Get("/financial", reportHandler.FinancialSummary)
	reports.Get("/commissions", reportHandler.Commissions)
	reports.Get("/ranking", reportHandler.Ranking)

	// Ordens de serviço (gated)
	osGroup := protected.Group("/service-orders", gate(license.PageOS))
	osHandler := NewServiceOrderHandler(deps.ServiceOrders)
	osGroup.Post("/", osHandler.Create)
	osGroup.Get("/", osHandler.List)
	osGroup.Get("/:id", osHandler.GetByID)
	osGroup.Put("/:id", osHandler.Update)

	// Clientes (gated)
	customers := protected.Group("/customers", gate(license.PageCustomers))
	customerHandler := NewCustomerHandler(deps.Customers)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Put("/:id", customerHandler.Update)

	// Estoque (gated)
	products := protected.Group("/products", gate(license.PageInventory))
	productHandler := NewProductHandler(deps.Products)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Equipe (gated)
	team := protected.Group("/team", gate(license.PageTeam))
	teamHandler := NewTeamHandler(deps.Team)
	team.Post("/", teamHandler.Create)
	team.Get("/", teamHandler.List)
	team.Delete("/:id", teamHandler.Delete)

	// Livro-caixa (gated)
	transactions := protected.Group("/transactions", gate(license.PageFinancial))
	transactionHandler := NewTransactionHandler(deps.Transactions)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)
	transactions.Delete("/:id", transactionHandler.Delete)

	// Agenda (gated)
	agenda := protected.Group("/appointments", gate(license.PageAgenda))
	appointmentHandler := NewAppointmentHandler(deps.Appointments)
	agenda.Post("/", appointmentHandler.Create)
	agenda.Get("/", appointmentHandler.List)
	agenda.Put("/:id", appointmentHandler.Update)
	agenda.Delete("/:id", appointmentHandler.Delete)

	// Chat de suporte (gated como página de suporte)
	chatHandler := NewChatHandler(deps.ChatStream, deps.Users, deps.Log)
	chatGroup := protected.Group("/chat", gate(license.PageSupport))
	chatGroup.Get("/messages", chatHandler.History)
	chatGroup.Post("/messages", chatHandler.Send)

	// Websocket do chat: auth via query param token e upgrade obrigatório.
	ws := api.Group("/ws", WebsocketAuthMiddleware(deps.JWTSecret), func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	ws.Get("/chat", gate(license.PageSupport), chatHandler.Websocket())
}
