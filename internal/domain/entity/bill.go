package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de factura. Toda factura nace PENDING; las transiciones las decide
// un operador y solo salen de PENDING.
const (
	BillStatusPending   = "PENDING"
	BillStatusPaid      = "PAID"
	BillStatusOverdue   = "OVERDUE"
	BillStatusCancelled = "CANCELLED"
)

// ValidBillStatus indica si el valor es un estado de factura conocido.
func ValidBillStatus(status string) bool {
	switch status {
	case BillStatusPending, BillStatusPaid, BillStatusOverdue, BillStatusCancelled:
		return true
	}
	return false
}

// BillItem es una línea de factura con el precio unitario congelado al
// momento de la emisión.
type BillItem struct {
	ID         string
	BillID     string
	ProductID  string
	Quantity   int64
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// Bill es una factura de asignación de stock a un administrador.
// Total = Subtotal + Tax - Discount.
type Bill struct {
	ID         string
	BillNumber string
	AdminID    string
	Items      []BillItem
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	Discount   decimal.Decimal
	Total      decimal.Decimal
	Status     string
	DueDate    time.Time
	Notes      string
	CreatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
