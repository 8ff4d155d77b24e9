package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/U-Yash/Eyewear-Product-Management/internal/application/dto"
	"github.com/U-Yash/Eyewear-Product-Management/internal/domain"
	"github.com/U-Yash/Eyewear-Product-Management/internal/domain/entity"
	"github.com/U-Yash/Eyewear-Product-Management/internal/domain/repository"
)

// BillNumber construye el número de factura: BILL-<epoch ms>-<consecutivo>.
// El formato se conserva exacto por compatibilidad con facturas existentes.
func BillNumber(now time.Time, sequence int64) string {
	return fmt.Sprintf("BILL-%d-%d", now.UnixMilli(), sequence)
}

// compose convierte las líneas solicitadas en una factura valorizada, sin
// tocar inventario todavía. Es todo-o-nada: si una línea falla (producto
// inexistente o stock insuficiente) no se produce factura alguna.
//
// Cada producto se trae con bloqueo de fila (GetForUpdate) para que la
// verificación de disponibilidad siga siendo válida cuando el flujo debite
// más adelante dentro de la misma transacción.
func compose(
	productRepo repository.ProductRepository,
	in dto.GenerateBillRequest,
	adminID, userID string,
	dueDate time.Time,
	sequence int64,
	now time.Time,
) (*entity.Bill, map[string]*entity.Product, error) {
	billID := uuid.New().String()
	products := make(map[string]*entity.Product, len(in.Items))
	items := make([]entity.BillItem, 0, len(in.Items))
	subtotal := decimal.Zero

	for _, line := range in.Items {
		product, err := productRepo.GetForUpdate(line.ProductID)
		if err != nil {
			return nil, nil, err
		}
		if product == nil {
			return nil, nil, domain.ErrProductNotFound
		}
		if line.Quantity > product.StockCount {
			return nil, nil, &domain.InsufficientStockError{
				ProductName: product.Name,
				Available:   product.StockCount,
				Requested:   line.Quantity,
			}
		}
		// Congelar el precio unitario al momento de la factura
		unitPrice := product.Price
		totalPrice := unitPrice.Mul(decimal.NewFromInt(line.Quantity))
		subtotal = subtotal.Add(totalPrice)
		products[product.ID] = product
		items = append(items, entity.BillItem{
			ID:         uuid.New().String(),
			BillID:     billID,
			ProductID:  product.ID,
			Quantity:   line.Quantity,
			UnitPrice:  unitPrice,
			TotalPrice: totalPrice,
		})
	}

	total := subtotal.Add(in.Tax).Sub(in.Discount)
	bill := &entity.Bill{
		ID:         billID,
		BillNumber: BillNumber(now, sequence),
		AdminID:    adminID,
		Items:      items,
		Subtotal:   subtotal,
		Tax:        in.Tax,
		Discount:   in.Discount,
		Total:      total,
		Status:     entity.BillStatusPending,
		DueDate:    dueDate,
		Notes:      in.Notes,
		CreatedBy:  userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return bill, products, nil
}
