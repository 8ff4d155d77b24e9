package billing

import (
	"context"

	"github.com/U-Yash/Eyewear-Product-Management/internal/application/dto"
	"github.com/U-Yash/Eyewear-Product-Management/internal/domain"
	"github.com/U-Yash/Eyewear-Product-Management/internal/domain/entity"
	"github.com/U-Yash/Eyewear-Product-Management/internal/domain/repository"
)

// BillsUseCase consultas de facturas y cambio de estado.
type BillsUseCase struct {
	billRepo    repository.BillRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

// NewBillsUseCase construye el caso de uso.
func NewBillsUseCase(billRepo repository.BillRepository, userRepo repository.UserRepository, productRepo repository.ProductRepository) *BillsUseCase {
	return &BillsUseCase{billRepo: billRepo, userRepo: userRepo, productRepo: productRepo}
}

// GetBill obtiene una factura por ID con líneas, admin y productos resueltos.
func (uc *BillsUseCase) GetBill(ctx context.Context, id string) (*dto.BillResponse, error) {
	bill, err := uc.billRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.billRepo.GetItemsByBillID(id)
	if err != nil {
		return nil, err
	}
	bill.Items = items
	admin, _ := uc.userRepo.GetByID(bill.AdminID)
	return toBillResponse(bill, admin, uc.resolveProducts(items)), nil
}

// ListBills lista facturas paginadas (sin líneas, cabeceras solamente).
func (uc *BillsUseCase) ListBills(ctx context.Context, page dto.PageRequest) ([]*dto.BillResponse, error) {
	page.DefaultPage()
	bills, err := uc.billRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BillResponse, 0, len(bills))
	for _, b := range bills {
		admin, _ := uc.userRepo.GetByID(b.AdminID)
		out = append(out, toBillResponse(b, admin, nil))
	}
	return out, nil
}

// UpdateStatus mueve una factura de PENDING a PAID, OVERDUE o CANCELLED.
// OVERDUE lo fija el operador; no hay job que lo derive de la fecha de
// vencimiento. Ninguna otra transición es válida.
func (uc *BillsUseCase) UpdateStatus(ctx context.Context, id, status string) error {
	if !entity.ValidBillStatus(status) || status == entity.BillStatusPending {
		return domain.ErrInvalidInput
	}
	bill, err := uc.billRepo.GetByID(id)
	if err != nil {
		return err
	}
	if bill == nil {
		return domain.ErrNotFound
	}
	if bill.Status != entity.BillStatusPending {
		return domain.ErrConflict
	}
	return uc.billRepo.UpdateStatus(id, status)
}

// resolveProducts trae los productos referenciados por las líneas para
// completar nombre y SKU en la respuesta.
func (uc *BillsUseCase) resolveProducts(items []entity.BillItem) map[string]*entity.Product {
	products := make(map[string]*entity.Product, len(items))
	for _, item := range items {
		if _, ok := products[item.ProductID]; ok {
			continue
		}
		if p, err := uc.productRepo.GetByID(item.ProductID); err == nil && p != nil {
			products[item.ProductID] = p
		}
	}
	return products
}
