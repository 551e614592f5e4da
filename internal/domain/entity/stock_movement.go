package entity

import "time"

// Tipos de movimiento del libro de stock.
const (
	MovementCarico        = "carico"
	MovementScarico       = "scarico"
	MovementTrasferimento = "trasferimento"
	MovementReso          = "reso"
)

// ValidMovementType verifica que el tipo pertenezca al conjunto permitido.
func ValidMovementType(t string) bool {
	switch t {
	case MovementCarico, MovementScarico, MovementTrasferimento, MovementReso:
		return true
	}
	return false
}

// StockMovement es una fila del libro de movimientos: append-only, nunca se
// actualiza ni se borra.
type StockMovement struct {
	ID           string
	ProductID    string
	MovementType string
	Quantity     int
	Notes        string
	UserID       string
	CreatedAt    time.Time
}
