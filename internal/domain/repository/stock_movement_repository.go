package repository

import "github.com/jpcastillo/warehouse-api/internal/domain/entity"

// MovementFilter filtros de listado del libro de movimientos.
type MovementFilter struct {
	ProductID    string
	MovementType string
	Limit        int
	Offset       int
}

// StockMovementRepository define el puerto para el libro de movimientos.
// Solo Create y List: las filas nunca se actualizan ni se borran.
type StockMovementRepository interface {
	Create(m *entity.StockMovement) error
	List(f MovementFilter) ([]*entity.StockMovement, error)
}
