package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/U-Yash/Eyewear-Product-Management/internal/domain"
	"github.com/U-Yash/Eyewear-Product-Management/internal/domain/entity"
	"github.com/U-Yash/Eyewear-Product-Management/internal/domain/repository"
)

// AllocationReason es la razón fija registrada por los débitos de asignación
// (DebitForAllocation). Se mantiene idéntica por compatibilidad con el
// histórico de transacciones.
const AllocationReason = "Admin stock allocation"

// StockLedger es el único lugar donde cambia el StockCount de un producto.
// Cada operación exitosa actualiza exactamente un producto y agrega exactamente
// una StockTransaction, dentro de una transacción con bloqueo de fila
// (SELECT FOR UPDATE) para evitar lost updates entre peticiones concurrentes.
type StockLedger struct {
	txRunner TxRunner
}

// NewStockLedger construye el caso de uso.
func NewStockLedger(txRunner TxRunner) *StockLedger {
	return &StockLedger{txRunner: txRunner}
}

// MovementInput entrada común para Increase/Decrease/Adjust.
// En Adjust, Quantity es el valor absoluto objetivo del stock, no un delta.
type MovementInput struct {
	ProductID string
	Quantity  int64
	Reason    string
	Reference string
	Notes     string
	UserID    string
}

// MovementResult resultado de una operación del ledger.
type MovementResult struct {
	NewStock    int64
	Transaction *entity.StockTransaction
}

// Increase suma Quantity (entero positivo) al stock del producto y registra
// una transacción IN. No hay tope superior.
func (l *StockLedger) Increase(ctx context.Context, in MovementInput) (*MovementResult, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var result *MovementResult
	err := l.txRunner.Run(ctx, func(productRepo repository.ProductRepository, txnRepo repository.StockTransactionRepository) error {
		product, err := lockProduct(productRepo, in.ProductID)
		if err != nil {
			return err
		}
		previous := product.StockCount
		newStock := previous + in.Quantity
		txn, err := l.apply(productRepo, txnRepo, product, entity.TransactionTypeIN, in.Quantity, previous, newStock, in)
		if err != nil {
			return err
		}
		result = &MovementResult{NewStock: newStock, Transaction: txn}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Decrease resta Quantity (entero positivo) del stock. Si la cantidad supera
// el stock disponible NO falla: el stock queda en cero (clamp). Registra una
// transacción OUT con la cantidad solicitada.
func (l *StockLedger) Decrease(ctx context.Context, in MovementInput) (*MovementResult, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var result *MovementResult
	err := l.txRunner.Run(ctx, func(productRepo repository.ProductRepository, txnRepo repository.StockTransactionRepository) error {
		product, err := lockProduct(productRepo, in.ProductID)
		if err != nil {
			return err
		}
		previous := product.StockCount
		newStock := previous - in.Quantity
		if newStock < 0 {
			newStock = 0
		}
		txn, err := l.apply(productRepo, txnRepo, product, entity.TransactionTypeOUT, in.Quantity, previous, newStock, in)
		if err != nil {
			return err
		}
		result = &MovementResult{NewStock: newStock, Transaction: txn}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Adjust fija el stock directamente en Quantity (entero no negativo, valor
// absoluto objetivo). La transacción ADJUSTMENT registra |objetivo - anterior|
// como cantidad para que el asiento sea auditable en ambas direcciones.
func (l *StockLedger) Adjust(ctx context.Context, in MovementInput) (*MovementResult, error) {
	if in.ProductID == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	var result *MovementResult
	err := l.txRunner.Run(ctx, func(productRepo repository.ProductRepository, txnRepo repository.StockTransactionRepository) error {
		product, err := lockProduct(productRepo, in.ProductID)
		if err != nil {
			return err
		}
		previous := product.StockCount
		newStock := in.Quantity
		adjustment := newStock - previous
		if adjustment < 0 {
			adjustment = -adjustment
		}
		txn, err := l.apply(productRepo, txnRepo, product, entity.TransactionTypeADJUSTMENT, adjustment, previous, newStock, in)
		if err != nil {
			return err
		}
		result = &MovementResult{NewStock: newStock, Transaction: txn}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DebitForAllocation descuenta stock para una asignación de factura. A
// diferencia de Decrease, RECHAZA la operación si Quantity supera el stock
// (InsufficientStockError) sin tocar producto ni libro.
func (l *StockLedger) DebitForAllocation(ctx context.Context, productID string, quantity int64, userID, referenceLabel string) (*MovementResult, error) {
	if productID == "" || quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var result *MovementResult
	err := l.txRunner.Run(ctx, func(productRepo repository.ProductRepository, txnRepo repository.StockTransactionRepository) error {
		txn, err := l.DebitForAllocationInTx(productRepo, txnRepo, productID, quantity, userID, referenceLabel, time.Now())
		if err != nil {
			return err
		}
		result = &MovementResult{NewStock: txn.NewStock, Transaction: txn}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DebitForAllocationInTx ejecuta el débito usando los repositorios del caller
// (misma transacción). Es la pieza que usa el flujo de facturación: si retorna
// error (ej. InsufficientStockError) el caller hace rollback de todo.
func (l *StockLedger) DebitForAllocationInTx(
	productRepo repository.ProductRepository,
	txnRepo repository.StockTransactionRepository,
	productID string,
	quantity int64,
	userID, referenceLabel string,
	now time.Time,
) (*entity.StockTransaction, error) {
	product, err := lockProduct(productRepo, productID)
	if err != nil {
		return nil, err
	}
	if quantity > product.StockCount {
		return nil, &domain.InsufficientStockError{
			ProductName: product.Name,
			Available:   product.StockCount,
			Requested:   quantity,
		}
	}
	previous := product.StockCount
	newStock := previous - quantity
	if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
		return nil, err
	}
	txn := &entity.StockTransaction{
		ID:            uuid.New().String(),
		ProductID:     product.ID,
		Type:          entity.TransactionTypeOUT,
		Quantity:      quantity,
		PreviousStock: previous,
		NewStock:      newStock,
		Reason:        AllocationReason,
		Reference:     referenceLabel,
		CreatedBy:     userID,
		CreatedAt:     now,
	}
	if err := txnRepo.Create(txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// apply persiste el nuevo stock y el asiento correspondiente.
func (l *StockLedger) apply(
	productRepo repository.ProductRepository,
	txnRepo repository.StockTransactionRepository,
	product *entity.Product,
	txnType string,
	quantity, previous, newStock int64,
	in MovementInput,
) (*entity.StockTransaction, error) {
	if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
		return nil, err
	}
	txn := &entity.StockTransaction{
		ID:            uuid.New().String(),
		ProductID:     product.ID,
		Type:          txnType,
		Quantity:      quantity,
		PreviousStock: previous,
		NewStock:      newStock,
		Reason:        in.Reason,
		Reference:     in.Reference,
		Notes:         in.Notes,
		CreatedBy:     in.UserID,
		CreatedAt:     time.Now(),
	}
	if err := txnRepo.Create(txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// lockProduct trae el producto con bloqueo de fila; nil se traduce a
// ErrProductNotFound.
func lockProduct(productRepo repository.ProductRepository, id string) (*entity.Product, error) {
	product, err := productRepo.GetForUpdate(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}
