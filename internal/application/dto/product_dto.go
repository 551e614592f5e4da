package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU             string          `json:"sku"`
	Barcode         string          `json:"barcode"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	Subcategory     string          `json:"subcategory"`
	Supplier        string          `json:"supplier"`
	PurchasePrice   decimal.Decimal `json:"purchase_price"`
	SalePrice       decimal.Decimal `json:"sale_price"`
	Quantity        int             `json:"quantity"`
	MinStock        int             `json:"min_stock"`
	MaxStock        int             `json:"max_stock"`
	ReorderPoint    int             `json:"reorder_point"`
	ReorderQuantity int             `json:"reorder_quantity"`
	WeightKg        float64         `json:"weight_kg"`
	WidthCm         float64         `json:"width_cm"`
	HeightCm        float64         `json:"height_cm"`
	DepthCm         float64         `json:"depth_cm"`
	LotTracking     bool            `json:"lot_tracking"`
	SerialTracking  bool            `json:"serial_tracking"`
}

// UpdateProductRequest entrada para actualizar un producto. Campos nil no se tocan.
// Quantity no se actualiza por aquí: se maneja vía movimientos de stock.
type UpdateProductRequest struct {
	SKU             *string          `json:"sku"`
	Barcode         *string          `json:"barcode"`
	Name            *string          `json:"name"`
	Description     *string          `json:"description"`
	Category        *string          `json:"category"`
	Subcategory     *string          `json:"subcategory"`
	Supplier        *string          `json:"supplier"`
	PurchasePrice   *decimal.Decimal `json:"purchase_price"`
	SalePrice       *decimal.Decimal `json:"sale_price"`
	MinStock        *int             `json:"min_stock"`
	MaxStock        *int             `json:"max_stock"`
	ReorderPoint    *int             `json:"reorder_point"`
	ReorderQuantity *int             `json:"reorder_quantity"`
	LotTracking     *bool            `json:"lot_tracking"`
	IsActive        *bool            `json:"is_active"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID              string          `json:"id"`
	SKU             string          `json:"sku"`
	Barcode         string          `json:"barcode,omitempty"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Category        string          `json:"category,omitempty"`
	Subcategory     string          `json:"subcategory,omitempty"`
	Supplier        string          `json:"supplier,omitempty"`
	PurchasePrice   decimal.Decimal `json:"purchase_price"`
	SalePrice       decimal.Decimal `json:"sale_price"`
	Quantity        int             `json:"quantity"`
	MinStock        int             `json:"min_stock"`
	MaxStock        int             `json:"max_stock"`
	ReorderPoint    int             `json:"reorder_point"`
	ReorderQuantity int             `json:"reorder_quantity"`
	LotTracking     bool            `json:"lot_tracking"`
	SerialTracking  bool            `json:"serial_tracking"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProductListQuery filtros del listado de productos.
type ProductListQuery struct {
	PageRequest
	Search   string `query:"search"`
	Category string `query:"category"`
	LowStock bool   `query:"low_stock"`
}
