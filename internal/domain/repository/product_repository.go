package repository

import "github.com/jpcastillo/warehouse-api/internal/domain/entity"

// ProductFilter filtros de listado de productos.
type ProductFilter struct {
	Search   string // name, sku o barcode (ILIKE)
	Category string
	LowStock bool
	Limit    int
	Offset   int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetByCode busca por barcode o SKU (lookup de scanner).
	GetByCode(code string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateQuantity actualiza solo el on-hand denormalizado (motor de stock).
	UpdateQuantity(id string, quantity int) error
	List(f ProductFilter) ([]*entity.Product, error)
	Categories() ([]string, error)
	LowStock(limit int) ([]*entity.Product, error)
	Delete(id string) error
}
