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

	"github.com/U-Yash/Eyewear-Product-Management/internal/application/auth"
	"github.com/U-Yash/Eyewear-Product-Management/internal/application/billing"
	"github.com/U-Yash/Eyewear-Product-Management/internal/application/ledger"
	"github.com/U-Yash/Eyewear-Product-Management/internal/application/usecase"
	infrapdf "github.com/U-Yash/Eyewear-Product-Management/internal/infrastructure/pdf"
	"github.com/U-Yash/Eyewear-Product-Management/internal/infrastructure/postgres"
	httpRouter "github.com/U-Yash/Eyewear-Product-Management/internal/interfaces/http"
	"github.com/U-Yash/Eyewear-Product-Management/pkg/config"
	"github.com/U-Yash/Eyewear-Product-Management/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	txnRepo := postgres.NewStockTransactionRepository(pool)
	billRepo := postgres.NewBillRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockLedger := ledger.NewStockLedger(txRunner)
	historyUC := ledger.NewHistoryUseCase(txnRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	userUC := usecase.NewUserUseCase(userRepo)

	generateBillUC := billing.NewGenerateBillUseCase(txRunner, stockLedger, userRepo)
	billsUC := billing.NewBillsUseCase(billRepo, userRepo, productRepo)
	pdfGenerator := infrapdf.NewMarotoBillGenerator()
	billPDFUC := billing.NewPDFUseCase(billRepo, userRepo, productRepo, pdfGenerator)

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
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProductUC:    productUC,
		UserUC:       userUC,
		StockLedger:  stockLedger,
		History:      historyUC,
		GenerateBill: generateBillUC,
		BillsUC:      billsUC,
		BillPDF:      billPDFUC,
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
