package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierOrderItemInput línea de un ordine fornitore al crearlo.
type SupplierOrderItemInput struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateSupplierOrderRequest entrada para crear un ordine fornitore.
type CreateSupplierOrderRequest struct {
	Supplier string                   `json:"supplier"`
	Notes    string                   `json:"notes"`
	Items    []SupplierOrderItemInput `json:"items"`
}

// UpdateSupplierOrderStatusRequest transición de estado del ordine fornitore.
type UpdateSupplierOrderStatusRequest struct {
	Status string `json:"status"`
}

// SupplierOrderItemResponse línea en las respuestas.
type SupplierOrderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// SupplierOrderResponse salida de un ordine fornitore.
type SupplierOrderResponse struct {
	ID        string                      `json:"id"`
	Supplier  string                      `json:"supplier"`
	Status    string                      `json:"status"`
	Notes     string                      `json:"notes,omitempty"`
	UserID    string                      `json:"user_id"`
	Items     []SupplierOrderItemResponse `json:"items"`
	CreatedAt time.Time                   `json:"created_at"`
}

// SupplierOrderListQuery filtros del listado.
type SupplierOrderListQuery struct {
	PageRequest
	Status string `query:"status"`
}
