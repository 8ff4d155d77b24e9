package repository

import "github.com/U-Yash/Eyewear-Product-Management/internal/domain/entity"

// StockTransactionRepository define el puerto del libro de transacciones.
// Es append-only: no expone Update ni Delete.
type StockTransactionRepository interface {
	Create(txn *entity.StockTransaction) error
	GetByID(id string) (*entity.StockTransaction, error)
	List(limit, offset int) ([]*entity.StockTransaction, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.StockTransaction, error)
}
