package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del magazzino.
// Quantity es el total on-hand denormalizado; la suma por ubicación vive en
// LocationInventory y se espera (no se fuerza) que cuadre con este campo.
// El invariante Quantity >= 0 se garantiza recortando en el momento de la
// mutación, no con un constraint de base de datos.
type Product struct {
	ID              string
	SKU             string // único
	Barcode         string
	Name            string
	Description     string
	Category        string
	Subcategory     string
	Supplier        string
	PurchasePrice   decimal.Decimal
	SalePrice       decimal.Decimal
	Quantity        int
	MinStock        int
	MaxStock        int
	ReorderPoint    int
	ReorderQuantity int
	WeightKg        float64
	WidthCm         float64
	HeightCm        float64
	DepthCm         float64
	LotTracking     bool
	SerialTracking  bool
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// LowStock indica si el producto está en o por debajo del stock mínimo.
func (p *Product) LowStock() bool {
	return p.Quantity <= p.MinStock
}
