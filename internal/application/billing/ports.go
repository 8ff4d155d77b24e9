package billing

import (
	"context"
	"time"

	"github.com/U-Yash/Eyewear-Product-Management/internal/domain/entity"
	"github.com/U-Yash/Eyewear-Product-Management/internal/domain/repository"
)

// BillingTxRunner ejecuta una función dentro de una transacción que abarca
// los repos de inventario y facturación. Los débitos de stock y la escritura
// de la factura comparten esta única frontera transaccional: cualquier fallo
// revierte todo (commit-or-abort).
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		txnRepo repository.StockTransactionRepository,
		billRepo repository.BillRepository,
	) error) error
}

// StockDebiter integra la facturación con el ledger de stock.
// DebitForAllocationInTx descuenta stock usando los repositorios del caller
// (misma transacción); si retorna error (ej. InsufficientStockError) el
// caller hace rollback de los débitos anteriores y de la factura.
type StockDebiter interface {
	DebitForAllocationInTx(
		productRepo repository.ProductRepository,
		txnRepo repository.StockTransactionRepository,
		productID string,
		quantity int64,
		userID, referenceLabel string,
		now time.Time,
	) (*entity.StockTransaction, error)
}

// BillPDFGenerator genera la representación gráfica de una factura.
type BillPDFGenerator interface {
	GenerateBillPDF(ctx context.Context, bill *entity.Bill, admin *entity.User, lines []BillLineForPDF) ([]byte, error)
}

// BillLineForPDF línea de factura con el producto resuelto para el PDF.
type BillLineForPDF struct {
	Item        entity.BillItem
	ProductName string
	ProductSKU  string
}
