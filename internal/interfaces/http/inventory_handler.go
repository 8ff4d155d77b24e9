package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/U-Yash/Eyewear-Product-Management/internal/application/dto"
	"github.com/U-Yash/Eyewear-Product-Management/internal/application/ledger"
)

// InventoryHandler maneja los movimientos de stock y el histórico (protegido).
type InventoryHandler struct {
	ledger  *ledger.StockLedger
	history *ledger.HistoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(stockLedger *ledger.StockLedger, history *ledger.HistoryUseCase) *InventoryHandler {
	return &InventoryHandler{ledger: stockLedger, history: history}
}

// StockIn suma stock a un producto.
// POST /api/inventory/stock-in
func (h *InventoryHandler) StockIn(c *fiber.Ctx) error {
	return h.movement(c, h.ledger.Increase)
}

// StockOut resta stock; si la cantidad supera el disponible el stock queda
// en cero, no falla.
// POST /api/inventory/stock-out
func (h *InventoryHandler) StockOut(c *fiber.Ctx) error {
	return h.movement(c, h.ledger.Decrease)
}

// Adjust fija el stock en un valor absoluto (conteo físico).
// POST /api/inventory/adjust
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	return h.movement(c, h.ledger.Adjust)
}

func (h *InventoryHandler) movement(
	c *fiber.Ctx,
	op func(ctx context.Context, in ledger.MovementInput) (*ledger.MovementResult, error),
) error {
	var in dto.StockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := op(c.Context(), ledger.MovementInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		Reference: in.Reference,
		Notes:     in.Notes,
		UserID:    GetUserID(c),
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.StockMovementResponse{
		NewStock:    result.NewStock,
		Transaction: ledger.ToTransactionResponse(result.Transaction),
	})
}

// ListTransactions lista el histórico del libro de stock.
// GET /api/inventory/transactions?product_id=&limit=&offset=
func (h *InventoryHandler) ListTransactions(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	txns, err := h.history.ListTransactions(c.Context(), c.Query("product_id"), page)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(txns)
}
