package entity

import "time"

// Tipos de transacción de stock.
const (
	TransactionTypeIN         = "IN"
	TransactionTypeOUT        = "OUT"
	TransactionTypeADJUSTMENT = "ADJUSTMENT"
)

// StockTransaction es un asiento inmutable del libro de inventario. Registra
// el stock antes y después del movimiento para que el histórico sea auditable
// sin reconstruir estado.
type StockTransaction struct {
	ID            string
	ProductID     string
	Type          string // IN, OUT, ADJUSTMENT
	Quantity      int64
	PreviousStock int64
	NewStock      int64
	Reason        string
	Reference     string
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time
}
