package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un ordine fornitore.
const (
	SupplierOrderStatusInviato  = "inviato"
	SupplierOrderStatusRicevuto = "ricevuto"
	SupplierOrderStatusParziale = "parziale"
)

// ValidSupplierOrderStatus verifica que el estado pertenezca al conjunto permitido.
func ValidSupplierOrderStatus(s string) bool {
	switch s {
	case SupplierOrderStatusInviato, SupplierOrderStatusRicevuto, SupplierOrderStatusParziale:
		return true
	}
	return false
}

// SupplierOrder es el espejo entrante de Order: la transición a "ricevuto"
// incrementa stock una sola vez.
type SupplierOrder struct {
	ID        string
	Supplier  string
	Status    string
	Notes     string
	UserID    string
	CreatedAt time.Time

	Items []SupplierOrderItem
}

// SupplierOrderItem es una línea del ordine fornitore.
type SupplierOrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}
