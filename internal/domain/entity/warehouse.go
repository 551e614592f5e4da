package entity

import "time"

// Warehouse es un magazzino físico.
type Warehouse struct {
	ID        string
	Code      string // único
	Name      string
	Address   string
	City      string
	Country   string
	IsActive  bool
	CreatedAt time.Time
}

// WarehouseZone es una zona dentro de un magazzino (código único por magazzino).
type WarehouseZone struct {
	ID          string
	WarehouseID string
	Code        string
	Name        string
	ZoneType    string // storage, picking, receiving, shipping
	IsActive    bool
}

// Location es una ubicación física (corsia/scaffale/livello/posto) con barcode único.
type Location struct {
	ID           string
	ZoneID       string
	Aisle        string
	Rack         string
	Level        string
	Bin          string
	Barcode      string
	LocationType string
	IsActive     bool
	IsBlocked    bool
}

// LocationInventory es la cantidad de un producto (y opcionalmente lote) en una
// ubicación. Única por (location_id, product_id, lot_id).
type LocationInventory struct {
	ID               string
	LocationID       string
	ProductID        string
	LotID            string
	Quantity         int
	ReservedQuantity int
	UpdatedAt        time.Time
}
