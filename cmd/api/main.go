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
	"github.com/shopspring/decimal"

	"github.com/ventapro/comisiona-api/internal/application/auth"
	"github.com/ventapro/comisiona-api/internal/application/billing"
	"github.com/ventapro/comisiona-api/internal/application/reports"
	"github.com/ventapro/comisiona-api/internal/application/usecase"
	"github.com/ventapro/comisiona-api/internal/domain/engine"
	infrapdf "github.com/ventapro/comisiona-api/internal/infrastructure/pdf"
	"github.com/ventapro/comisiona-api/internal/infrastructure/postgres"
	httpRouter "github.com/ventapro/comisiona-api/internal/interfaces/http"
	"github.com/ventapro/comisiona-api/pkg/config"
	"github.com/ventapro/comisiona-api/pkg/logger"
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

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	sellerRepo := postgres.NewSellerRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Umbrales del motor: solo el umbral de revisión es configurable por env.
	thresholds := engine.DefaultThresholds()
	if v, err := decimal.NewFromString(cfg.Engine.ReviewThreshold); err == nil && !v.IsNegative() {
		thresholds.ReviewThreshold = v
	} else {
		log.Warn().
			Str("value", cfg.Engine.ReviewThreshold).
			Msg("ENGINE_REVIEW_THRESHOLD inválido, usando el valor por defecto")
	}

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	sellerUC := usecase.NewSellerUseCase(sellerRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	moduleSvc := usecase.NewModuleService(companyRepo)

	createInvoiceUC := billing.NewCreateInvoiceUseCase(invoiceRepo, txRunner, log)
	importInvoicesUC := billing.NewImportInvoicesUseCase(invoiceRepo, txRunner, log)

	reportUC := reports.NewReportUseCase(invoiceRepo, sellerRepo, clientRepo, thresholds, log)
	reconUC := reports.NewReconciliationUseCase(invoiceRepo, sellerRepo, thresholds, log)
	dashboardUC := reports.NewDashboardUseCase(invoiceRepo, sellerRepo, thresholds, log)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reconPDFUC := reports.NewReconciliationPDFUseCase(reconUC, companyRepo, invoiceRepo, thresholds, pdfGenerator, log)

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
		Title:    "Comisiona API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		CompanyUC:        companyUC,
		SellerUC:         sellerUC,
		ClientUC:         clientUC,
		ProductUC:        productUC,
		ModuleService:    moduleSvc,
		CreateInvoice:    createInvoiceUC,
		ImportInvoices:   importInvoicesUC,
		InvoiceRepo:      invoiceRepo,
		ReportUC:         reportUC,
		ReconciliationUC: reconUC,
		ReconPDFUC:       reconPDFUC,
		DashboardUC:      dashboardUC,
		JWTSecret:        cfg.JWT.Secret,
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
