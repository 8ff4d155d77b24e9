package billing

import (
	"context"
	"errors"
	"time"

	"github.com/U-Yash/Eyewear-Product-Management/internal/application/dto"
	"github.com/U-Yash/Eyewear-Product-Management/internal/domain"
	"github.com/U-Yash/Eyewear-Product-Management/internal/domain/entity"
	"github.com/U-Yash/Eyewear-Product-Management/internal/domain/repository"
)

// Reintentos ante colisión del número de factura (violación de unicidad):
// dos generaciones concurrentes pueden calcular el mismo consecutivo; la
// constraint única detecta al perdedor y aquí se vuelve a intentar.
const maxBillNumberRetries = 3

// Vencimiento por defecto cuando la petición no trae due_date.
const defaultDueDays = 30

// GenerateBillUseCase orquesta la generación de facturas de asignación:
// componer líneas → debitar stock por línea → persistir factura, todo dentro
// de una sola transacción.
type GenerateBillUseCase struct {
	txRunner BillingTxRunner
	ledger   StockDebiter
	userRepo repository.UserRepository
}

// NewGenerateBillUseCase construye el caso de uso.
func NewGenerateBillUseCase(txRunner BillingTxRunner, ledger StockDebiter, userRepo repository.UserRepository) *GenerateBillUseCase {
	return &GenerateBillUseCase{txRunner: txRunner, ledger: ledger, userRepo: userRepo}
}

// GenerateBill genera una factura de asignación de stock para un admin.
//
//  1. Valida que el destinatario exista y tenga rol de admin.
//  2. Compone las líneas (precios congelados, disponibilidad verificada).
//  3. Debita el stock línea por línea en el orden solicitado, con la razón
//     fija del ledger y el nombre del admin como referencia de auditoría.
//  4. Persiste la factura (estado PENDING).
//
// Los pasos 2–4 comparten una transacción: si cualquier línea falla, ningún
// débito anterior queda aplicado y no se crea factura.
func (uc *GenerateBillUseCase) GenerateBill(ctx context.Context, userID string, in dto.GenerateBillRequest) (*dto.BillResponse, error) {
	if in.AdminID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Items {
		if line.ProductID == "" || line.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Tax.IsNegative() || in.Discount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	dueDate, err := parseDueDate(in.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	// Validar destinatario (lectura, fuera de la tx)
	admin, err := uc.userRepo.GetByID(in.AdminID)
	if err != nil {
		return nil, err
	}
	if admin == nil || !admin.IsAdmin() {
		return nil, domain.ErrAdminNotFound
	}

	var bill *entity.Bill
	var products map[string]*entity.Product

	for attempt := 0; attempt < maxBillNumberRetries; attempt++ {
		now := time.Now()
		err = uc.txRunner.RunBilling(ctx, func(
			productRepo repository.ProductRepository,
			txnRepo repository.StockTransactionRepository,
			billRepo repository.BillRepository,
		) error {
			// Consecutivo 1-based dentro de la tx; la constraint única sobre
			// bill_number resuelve el empate entre transacciones concurrentes.
			count, err := billRepo.CountAll()
			if err != nil {
				return err
			}
			bill, products, err = compose(productRepo, in, admin.ID, userID, dueDate, count+1, now)
			if err != nil {
				return err
			}
			// Un débito OUT por línea, en el orden solicitado, referenciando
			// el nombre del admin destinatario.
			for _, item := range bill.Items {
				if _, err := uc.ledger.DebitForAllocationInTx(
					productRepo, txnRepo,
					item.ProductID, item.Quantity,
					userID, admin.Name, now,
				); err != nil {
					return err
				}
			}
			if err := billRepo.Create(bill); err != nil {
				return err
			}
			for i := range bill.Items {
				if err := billRepo.CreateItem(&bill.Items[i]); err != nil {
					return err
				}
			}
			return nil
		})
		if err == nil {
			return toBillResponse(bill, admin, products), nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
	}
	return nil, err
}

// parseDueDate interpreta YYYY-MM-DD; vacío usa el vencimiento por defecto.
func parseDueDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now().AddDate(0, 0, defaultDueDays), nil
	}
	return time.Parse("2006-01-02", s)
}

func toBillResponse(bill *entity.Bill, admin *entity.User, products map[string]*entity.Product) *dto.BillResponse {
	resp := &dto.BillResponse{
		ID:         bill.ID,
		BillNumber: bill.BillNumber,
		AdminID:    bill.AdminID,
		Subtotal:   bill.Subtotal,
		Tax:        bill.Tax,
		Discount:   bill.Discount,
		Total:      bill.Total,
		Status:     bill.Status,
		DueDate:    bill.DueDate,
		Notes:      bill.Notes,
		CreatedBy:  bill.CreatedBy,
		CreatedAt:  bill.CreatedAt,
		Items:      make([]dto.BillItemResponse, 0, len(bill.Items)),
	}
	if admin != nil {
		resp.AdminName = admin.Name
	}
	for _, item := range bill.Items {
		line := dto.BillItemResponse{
			ID:         item.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		}
		if p := products[item.ProductID]; p != nil {
			line.ProductName = p.Name
			line.ProductSKU = p.SKU
		}
		resp.Items = append(resp.Items, line)
	}
	return resp
}
