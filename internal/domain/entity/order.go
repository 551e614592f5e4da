package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un ordine cliente, en orden de avance.
const (
	OrderStatusInLavorazione  = "in_lavorazione"
	OrderStatusInPreparazione = "in_preparazione"
	OrderStatusPronto         = "pronto"
	OrderStatusSpedito        = "spedito"
	OrderStatusConsegnato     = "consegnato"
)

// ValidOrderStatus verifica que el estado pertenezca al conjunto permitido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusInLavorazione, OrderStatusInPreparazione, OrderStatusPronto,
		OrderStatusSpedito, OrderStatusConsegnato:
		return true
	}
	return false
}

// Order es un ordine cliente con sus líneas. La transición a "spedito" es el
// único punto que descuenta stock, una sola vez (guardia por estado previo).
type Order struct {
	ID         string
	CustomerID string
	AddressID  string
	UserID     string
	Status     string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Items []OrderItem
}

// Terminal indica si el ordine está en un estado terminal (no eliminable).
func (o *Order) Terminal() bool {
	return o.Status == OrderStatusSpedito || o.Status == OrderStatusConsegnato
}

// OrderItem es una línea del ordine.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}
