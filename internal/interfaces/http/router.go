package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ventapro/comisiona-api/internal/application/auth"
	"github.com/ventapro/comisiona-api/internal/application/billing"
	"github.com/ventapro/comisiona-api/internal/application/reports"
	"github.com/ventapro/comisiona-api/internal/application/usecase"
	"github.com/ventapro/comisiona-api/internal/domain/entity"
	"github.com/ventapro/comisiona-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	CompanyUC        *usecase.CompanyUseCase
	SellerUC         *usecase.SellerUseCase
	ClientUC         *usecase.ClientUseCase
	ProductUC        *usecase.ProductUseCase
	ModuleService    *usecase.ModuleService
	CreateInvoice    *billing.CreateInvoiceUseCase
	ImportInvoices   *billing.ImportInvoicesUseCase
	InvoiceRepo      repository.InvoiceRepository
	ReportUC         *reports.ReportUseCase
	ReconciliationUC *reports.ReconciliationUseCase
	ReconPDFUC       *reports.ReconciliationPDFUseCase
	DashboardUC      *reports.DashboardUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (alta pública; consulta protegida en despliegues reales)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo: vendedores, clientes y productos (protegido)
	sellers := protected.Group("/sellers")
	sellerHandler := NewSellerHandler(deps.SellerUC)
	sellers.Post("/", RequireRole(entity.RoleAdmin, entity.RoleGerente), sellerHandler.Create)
	sellers.Get("/", sellerHandler.List)
	sellers.Get("/:id", sellerHandler.GetByID)

	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", RequireRole(entity.RoleAdmin, entity.RoleGerente), productHandler.Create)
	products.Get("/", productHandler.List)

	// Facturas (protegido, módulo billing)
	invoices := protected.Group("/invoices", RequireModule(entity.ModuleBilling, deps.ModuleService))
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.ImportInvoices, deps.InvoiceRepo)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Post("/import", RequireRole(entity.RoleAdmin, entity.RoleGerente), invoiceHandler.Import)
	invoices.Get("/:id", invoiceHandler.GetByID)

	// Reportes (protegido, módulo reports)
	reportsGroup := protected.Group("/reports", RequireModule(entity.ModuleReports, deps.ModuleService))
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/products", reportHandler.Products)
	reportsGroup.Get("/sellers", reportHandler.Sellers)
	reportsGroup.Get("/clients", reportHandler.Clients)

	reconHandler := NewReconciliationHandler(deps.ReconciliationUC, deps.ReconPDFUC)
	reportsGroup.Get("/reconciliation", RequireRole(entity.RoleAdmin, entity.RoleGerente), reconHandler.Get)
	reportsGroup.Get("/reconciliation/pdf", RequireRole(entity.RoleAdmin, entity.RoleGerente), reconHandler.PDF)

	// Dashboard (protegido, módulo reports)
	dashboard := protected.Group("/dashboard", RequireModule(entity.ModuleReports, deps.ModuleService))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
