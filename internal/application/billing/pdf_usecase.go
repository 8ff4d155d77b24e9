package billing

import (
	"context"

	"github.com/U-Yash/Eyewear-Product-Management/internal/domain"
	"github.com/U-Yash/Eyewear-Product-Management/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica (PDF) de una factura.
type PDFUseCase struct {
	billRepo    repository.BillRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	generator   BillPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	billRepo repository.BillRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	generator BillPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{billRepo: billRepo, userRepo: userRepo, productRepo: productRepo, generator: generator}
}

// GenerateBillPDF arma el contexto (factura + admin + productos) y delega
// el layout al generador.
func (uc *PDFUseCase) GenerateBillPDF(ctx context.Context, billID string) ([]byte, error) {
	bill, err := uc.billRepo.GetByID(billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.billRepo.GetItemsByBillID(billID)
	if err != nil {
		return nil, err
	}
	bill.Items = items

	admin, err := uc.userRepo.GetByID(bill.AdminID)
	if err != nil {
		return nil, err
	}

	lines := make([]BillLineForPDF, 0, len(items))
	for _, item := range items {
		line := BillLineForPDF{Item: item}
		if p, err := uc.productRepo.GetByID(item.ProductID); err == nil && p != nil {
			line.ProductName = p.Name
			line.ProductSKU = p.SKU
		}
		lines = append(lines, line)
	}
	return uc.generator.GenerateBillPDF(ctx, bill, admin, lines)
}
