package dto

import "time"

// StockMovementRequest cuerpo para stock-in, stock-out y adjust.
// En adjust, Quantity es el valor absoluto objetivo del stock.
type StockMovementRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Reason    string `json:"reason"`
	Reference string `json:"reference"`
	Notes     string `json:"notes"`
}

// StockMovementResponse resultado de una operación del ledger.
type StockMovementResponse struct {
	NewStock    int64                    `json:"new_stock"`
	Transaction StockTransactionResponse `json:"transaction"`
}

// StockTransactionResponse asiento del libro de stock para la API.
type StockTransactionResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	Type          string    `json:"type"`
	Quantity      int64     `json:"quantity"`
	PreviousStock int64     `json:"previous_stock"`
	NewStock      int64     `json:"new_stock"`
	Reason        string    `json:"reason"`
	Reference     string    `json:"reference,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}
