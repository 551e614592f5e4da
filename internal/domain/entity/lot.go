package entity

import "time"

// Lot agrupa unidades del mismo batch de producción/proveedor.
// Único por (product_id, lot_number).
type Lot struct {
	ID             string
	ProductID      string
	LotNumber      string
	ProductionDate *time.Time
	ExpiryDate     *time.Time
	SupplierLot    string
	Status         string // active, quarantine, expired
	Notes          string
	CreatedAt      time.Time
}
