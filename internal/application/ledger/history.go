package ledger

import (
	"context"

	"github.com/U-Yash/Eyewear-Product-Management/internal/application/dto"
	"github.com/U-Yash/Eyewear-Product-Management/internal/domain/entity"
	"github.com/U-Yash/Eyewear-Product-Management/internal/domain/repository"
)

// HistoryUseCase consulta del libro de transacciones (solo lectura).
type HistoryUseCase struct {
	txnRepo repository.StockTransactionRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(txnRepo repository.StockTransactionRepository) *HistoryUseCase {
	return &HistoryUseCase{txnRepo: txnRepo}
}

// ListTransactions lista asientos, opcionalmente filtrados por producto,
// del más reciente al más antiguo.
func (uc *HistoryUseCase) ListTransactions(ctx context.Context, productID string, page dto.PageRequest) ([]dto.StockTransactionResponse, error) {
	page.DefaultPage()
	var (
		txns []*entity.StockTransaction
		err  error
	)
	if productID != "" {
		txns, err = uc.txnRepo.ListByProduct(productID, page.Limit, page.Offset)
	} else {
		txns, err = uc.txnRepo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockTransactionResponse, 0, len(txns))
	for _, t := range txns {
		out = append(out, ToTransactionResponse(t))
	}
	return out, nil
}

// ToTransactionResponse convierte un asiento a su DTO.
func ToTransactionResponse(t *entity.StockTransaction) dto.StockTransactionResponse {
	return dto.StockTransactionResponse{
		ID:            t.ID,
		ProductID:     t.ProductID,
		Type:          t.Type,
		Quantity:      t.Quantity,
		PreviousStock: t.PreviousStock,
		NewStock:      t.NewStock,
		Reason:        t.Reason,
		Reference:     t.Reference,
		Notes:         t.Notes,
		CreatedBy:     t.CreatedBy,
		CreatedAt:     t.CreatedAt,
	}
}
