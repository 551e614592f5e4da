package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ASNItemInput línea esperada de un ASN al crearlo.
type ASNItemInput struct {
	ProductID        string          `json:"product_id"`
	ExpectedQuantity int             `json:"expected_quantity"`
	LotNumber        string          `json:"lot_number"`
	TargetLocationID string          `json:"target_location_id"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
}

// CreateASNRequest entrada para crear un ASN.
type CreateASNRequest struct {
	Supplier       string         `json:"supplier"`
	WarehouseID    string         `json:"warehouse_id"`
	ExpectedDate   *time.Time     `json:"expected_date"`
	Carrier        string         `json:"carrier"`
	TrackingNumber string         `json:"tracking_number"`
	Notes          string         `json:"notes"`
	Items          []ASNItemInput `json:"items"`
}

// UpdateASNStatusRequest transición manual de estado del ASN.
type UpdateASNStatusRequest struct {
	Status string `json:"status"`
}

// ASNReceiveLine una línea de recepción: acumula sobre received_quantity.
type ASNReceiveLine struct {
	ASNItemID        string `json:"asn_item_id"`
	ReceivedQuantity int    `json:"received_quantity"`
	LotNumber        string `json:"lot_number"`
	LocationID       string `json:"location_id"`
}

// ASNReceiveRequest cuerpo de POST /api/asn/{id}/receive.
type ASNReceiveRequest struct {
	Lines []ASNReceiveLine `json:"lines"`
}

// ASNItemResponse línea del ASN en las respuestas.
type ASNItemResponse struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	ExpectedQuantity int             `json:"expected_quantity"`
	ReceivedQuantity int             `json:"received_quantity"`
	LotNumber        string          `json:"lot_number,omitempty"`
	TargetLocationID string          `json:"target_location_id,omitempty"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Status           string          `json:"status"`
}

// ASNResponse salida de un ASN.
type ASNResponse struct {
	ID             string            `json:"id"`
	ASNNumber      string            `json:"asn_number"`
	Supplier       string            `json:"supplier"`
	WarehouseID    string            `json:"warehouse_id"`
	Status         string            `json:"status"`
	ExpectedDate   *time.Time        `json:"expected_date,omitempty"`
	ArrivedAt      *time.Time        `json:"arrived_at,omitempty"`
	CompletedAt    *time.Time        `json:"completed_at,omitempty"`
	Carrier        string            `json:"carrier,omitempty"`
	TrackingNumber string            `json:"tracking_number,omitempty"`
	Notes          string            `json:"notes,omitempty"`
	Items          []ASNItemResponse `json:"items"`
	CreatedAt      time.Time         `json:"created_at"`
}

// ASNListQuery filtros del listado de ASN.
type ASNListQuery struct {
	PageRequest
	Status      string `query:"status"`
	WarehouseID string `query:"warehouse_id"`
}
