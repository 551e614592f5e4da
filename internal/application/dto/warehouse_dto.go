package dto

import "time"

// CreateWarehouseRequest entrada para crear un magazzino.
type CreateWarehouseRequest struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// WarehouseResponse salida de un magazzino.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	Country   string    `json:"country"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateZoneRequest entrada para crear una zona.
type CreateZoneRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	ZoneType string `json:"zone_type"`
}

// ZoneResponse salida de una zona.
type ZoneResponse struct {
	ID          string `json:"id"`
	WarehouseID string `json:"warehouse_id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	ZoneType    string `json:"zone_type"`
	IsActive    bool   `json:"is_active"`
}

// CreateLocationRequest entrada para crear una ubicación.
type CreateLocationRequest struct {
	ZoneID       string `json:"zone_id"`
	Aisle        string `json:"aisle"`
	Rack         string `json:"rack"`
	Level        string `json:"level"`
	Bin          string `json:"bin"`
	Barcode      string `json:"barcode"`
	LocationType string `json:"location_type"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID           string `json:"id"`
	ZoneID       string `json:"zone_id"`
	Aisle        string `json:"aisle"`
	Rack         string `json:"rack"`
	Level        string `json:"level"`
	Bin          string `json:"bin"`
	Barcode      string `json:"barcode"`
	LocationType string `json:"location_type"`
	IsActive     bool   `json:"is_active"`
	IsBlocked    bool   `json:"is_blocked"`
}

// LocationInventoryResponse fila de inventario por ubicación.
type LocationInventoryResponse struct {
	ID         string    `json:"id"`
	LocationID string    `json:"location_id"`
	ProductID  string    `json:"product_id"`
	LotID      string    `json:"lot_id,omitempty"`
	Quantity   int       `json:"quantity"`
	Reserved   int       `json:"reserved_quantity"`
	UpdatedAt  time.Time `json:"updated_at"`
}
