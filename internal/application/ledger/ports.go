package ledger

import (
	"context"

	"github.com/U-Yash/Eyewear-Product-Management/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el producto y su transacción
// de stock se escriban como una unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		txnRepo repository.StockTransactionRepository,
	) error) error
}
