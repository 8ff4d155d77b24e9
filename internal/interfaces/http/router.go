package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/U-Yash/Eyewear-Product-Management/internal/application/auth"
	"github.com/U-Yash/Eyewear-Product-Management/internal/application/billing"
	"github.com/U-Yash/Eyewear-Product-Management/internal/application/ledger"
	"github.com/U-Yash/Eyewear-Product-Management/internal/application/usecase"
	"github.com/U-Yash/Eyewear-Product-Management/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductUC    *usecase.ProductUseCase
	UserUC       *usecase.UserUseCase
	StockLedger  *ledger.StockLedger
	History      *ledger.HistoryUseCase
	GenerateBill *billing.GenerateBillUseCase
	BillsUC      *billing.BillsUseCase
	BillPDF      *billing.PDFUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público, registro solo para quien administra usuarios
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register",
		AuthMiddleware(deps.JWTSecret), RequireCapability(entity.CapManageUsers),
		authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", RequireCapability(entity.CapManageProducts), productHandler.Create)
	products.Put("/:id", RequireCapability(entity.CapManageProducts), productHandler.Update)
	products.Delete("/:id", RequireCapability(entity.CapManageProducts), productHandler.Delete)

	// Inventory: movimientos del ledger e histórico
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.StockLedger, deps.History)
	inventory.Post("/stock-in", RequireCapability(entity.CapManageStock), inventoryHandler.StockIn)
	inventory.Post("/stock-out", RequireCapability(entity.CapManageStock), inventoryHandler.StockOut)
	inventory.Post("/adjust", RequireCapability(entity.CapManageStock), inventoryHandler.Adjust)
	inventory.Get("/transactions", RequireCapability(entity.CapViewReports), inventoryHandler.ListTransactions)

	// Bills
	bills := protected.Group("/bills")
	billHandler := NewBillHandler(deps.GenerateBill, deps.BillsUC, deps.BillPDF)
	bills.Post("/generate", RequireCapability(entity.CapGenerateBills), billHandler.Generate)
	bills.Get("/", RequireCapability(entity.CapViewReports), billHandler.List)
	bills.Get("/:id", RequireCapability(entity.CapViewReports), billHandler.GetByID)
	bills.Get("/:id/pdf", RequireCapability(entity.CapViewReports), billHandler.PDF)
	bills.Patch("/:id/status", RequireCapability(entity.CapUpdateBills), billHandler.UpdateStatus)

	// Users (administración)
	users := protected.Group("/users", RequireCapability(entity.CapManageUsers))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Patch("/:id/role", userHandler.UpdateRole)
	users.Delete("/:id", userHandler.Delete)
}
