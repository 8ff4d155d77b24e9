package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillLineRequest una línea solicitada: producto y cantidad.
type BillLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// GenerateBillRequest cuerpo para generar una factura de asignación.
// Tax y Discount son montos absolutos (no porcentajes) y no pueden ser
// negativos; Total nunca se recibe, siempre se deriva.
type GenerateBillRequest struct {
	AdminID  string            `json:"admin_id"`
	Items    []BillLineRequest `json:"items"`
	Tax      decimal.Decimal   `json:"tax"`
	Discount decimal.Decimal   `json:"discount"`
	DueDate  string            `json:"due_date"` // YYYY-MM-DD
	Notes    string            `json:"notes"`
}

// UpdateBillStatusRequest cambio de estado (PAID, OVERDUE, CANCELLED).
type UpdateBillStatusRequest struct {
	Status string `json:"status"`
}

// BillItemResponse línea de factura con el producto resuelto para mostrar.
type BillItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductSKU  string          `json:"product_sku,omitempty"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// BillResponse factura completa para la API.
type BillResponse struct {
	ID         string             `json:"id"`
	BillNumber string             `json:"bill_number"`
	AdminID    string             `json:"admin_id"`
	AdminName  string             `json:"admin_name,omitempty"`
	Items      []BillItemResponse `json:"items"`
	Subtotal   decimal.Decimal    `json:"subtotal"`
	Tax        decimal.Decimal    `json:"tax"`
	Discount   decimal.Decimal    `json:"discount"`
	Total      decimal.Decimal    `json:"total"`
	Status     string             `json:"status"`
	DueDate    time.Time          `json:"due_date"`
	Notes      string             `json:"notes,omitempty"`
	CreatedBy  string             `json:"created_by"`
	CreatedAt  time.Time          `json:"created_at"`
}
