package repository

import "github.com/U-Yash/Eyewear-Product-Management/internal/domain/entity"

// BillRepository define el puerto de persistencia para Bill y sus líneas.
// CountAll alimenta el consecutivo del número de factura; UpdateStatus es la
// única mutación permitida después de crear la factura.
type BillRepository interface {
	Create(bill *entity.Bill) error
	CreateItem(item *entity.BillItem) error
	GetByID(id string) (*entity.Bill, error)
	GetItemsByBillID(billID string) ([]entity.BillItem, error)
	List(limit, offset int) ([]*entity.Bill, error)
	CountAll() (int64, error)
	UpdateStatus(id, status string) error
}
