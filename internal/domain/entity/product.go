package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de producto del catálogo óptico.
const (
	CategoryFrames     = "frames"
	CategorySunglasses = "sunglasses"
	CategoryLenses     = "lenses"
	CategoryContacts   = "contact_lenses"
	CategoryAccessory  = "accessory"
)

// Product representa un producto del catálogo (montura, lente, accesorio).
// StockCount es la única fuente de verdad del stock y solo cambia a través
// del ledger (ver application/ledger); nunca puede quedar negativo.
type Product struct {
	ID          string
	SKU         string // código único
	Name        string
	Description string
	Category    string
	Brand       string
	Price       decimal.Decimal // precio de venta unitario
	StockCount  int64
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
