package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemInput línea de un ordine al crearlo.
type OrderItemInput struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest entrada para crear un ordine cliente.
type CreateOrderRequest struct {
	CustomerID string           `json:"customer_id"`
	AddressID  string           `json:"address_id"`
	Notes      string           `json:"notes"`
	Items      []OrderItemInput `json:"items"`
}

// UpdateOrderStatusRequest entrada de la transición de estado.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse línea de un ordine en las respuestas.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderResponse salida de un ordine.
type OrderResponse struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customer_id"`
	AddressID  string              `json:"address_id,omitempty"`
	UserID     string              `json:"user_id"`
	Status     string              `json:"status"`
	Notes      string              `json:"notes,omitempty"`
	Items      []OrderItemResponse `json:"items"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// OrderListQuery filtros del listado de ordini.
type OrderListQuery struct {
	PageRequest
	Status     string `query:"status"`
	CustomerID string `query:"customer_id"`
}
