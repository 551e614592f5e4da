package dto

import "time"

// CreateMovementRequest entrada para registrar un movimiento manual.
type CreateMovementRequest struct {
	ProductID    string `json:"product_id"`
	MovementType string `json:"movement_type"` // carico, scarico, trasferimento, reso
	Quantity     int    `json:"quantity"`
	Notes        string `json:"notes"`
}

// MovementResponse fila del libro de movimientos en las respuestas.
type MovementResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	MovementType string    `json:"movement_type"`
	Quantity     int       `json:"quantity"`
	Notes        string    `json:"notes,omitempty"`
	UserID       string    `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// MovementListQuery filtros del listado de movimientos.
type MovementListQuery struct {
	PageRequest
	ProductID    string `query:"product_id"`
	MovementType string `query:"movement_type"`
}
