package repository

import "github.com/U-Yash/Eyewear-Product-Management/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate bloquea la fila del producto dentro de la transacción actual;
// es el mecanismo que cierra la carrera lectura-luego-escritura sobre el stock.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, stockCount int64) error
	List(limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
