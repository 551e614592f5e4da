package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un ASN (Advance Shipment Notice).
const (
	ASNStatusAtteso      = "atteso"
	ASNStatusInArrivo    = "in_arrivo"
	ASNStatusInRicezione = "in_ricezione"
	ASNStatusCompletato  = "completato"
	ASNStatusAnnullato   = "annullato"
)

// Estados de una línea de ASN.
const (
	ASNItemStatusAtteso   = "atteso"
	ASNItemStatusParziale = "parziale"
	ASNItemStatusRicevuto = "ricevuto"
)

// ValidASNStatus verifica que el estado pertenezca al conjunto permitido.
func ValidASNStatus(s string) bool {
	switch s {
	case ASNStatusAtteso, ASNStatusInArrivo, ASNStatusInRicezione,
		ASNStatusCompletato, ASNStatusAnnullato:
		return true
	}
	return false
}

// ASN es una entrega entrante esperada de un proveedor.
type ASN struct {
	ID             string
	ASNNumber      string // único, formato ASN-YYYYMMDD-XXXXXX
	Supplier       string
	WarehouseID    string
	Status         string
	ExpectedDate   *time.Time
	ArrivedAt      *time.Time
	CompletedAt    *time.Time
	Carrier        string
	TrackingNumber string
	Notes          string
	UserID         string
	CreatedAt      time.Time

	Items []ASNItem
}

// Receivable indica si el ASN admite recepciones de mercancía.
func (a *ASN) Receivable() bool {
	switch a.Status {
	case ASNStatusAtteso, ASNStatusInArrivo, ASNStatusInRicezione:
		return true
	}
	return false
}

// ASNItem es una línea del ASN: cantidad esperada vs recibida acumulada.
// ReceivedQuantity crece de forma monótona con cada recepción parcial.
type ASNItem struct {
	ID               string
	ASNID            string
	ProductID        string
	ExpectedQuantity int
	ReceivedQuantity int
	LotNumber        string
	TargetLocationID string
	UnitPrice        decimal.Decimal
	Status           string
}
