package dto

import "time"

// CreateLotRequest entrada para crear un lote.
type CreateLotRequest struct {
	ProductID      string     `json:"product_id"`
	LotNumber      string     `json:"lot_number"`
	ProductionDate *time.Time `json:"production_date"`
	ExpiryDate     *time.Time `json:"expiry_date"`
	SupplierLot    string     `json:"supplier_lot"`
	Notes          string     `json:"notes"`
}

// LotResponse salida de un lote.
type LotResponse struct {
	ID             string     `json:"id"`
	ProductID      string     `json:"product_id"`
	LotNumber      string     `json:"lot_number"`
	ProductionDate *time.Time `json:"production_date,omitempty"`
	ExpiryDate     *time.Time `json:"expiry_date,omitempty"`
	SupplierLot    string     `json:"supplier_lot,omitempty"`
	Status         string     `json:"status"`
	Notes          string     `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// LotListQuery filtros del listado de lotes.
type LotListQuery struct {
	PageRequest
	ProductID string `query:"product_id"`
	Status    string `query:"status"`
}
