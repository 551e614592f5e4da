package repository

import "github.com/jpcastillo/warehouse-api/internal/domain/entity"

// OrderFilter filtros de listado de ordini.
type OrderFilter struct {
	Status     string
	CustomerID string
	Limit      int
	Offset     int
}

// OrderRepository define el puerto de persistencia para Order y sus líneas.
type OrderRepository interface {
	// Create persiste el ordine y sus líneas en una sola operación.
	Create(order *entity.Order) error
	// GetByID devuelve el ordine con sus líneas cargadas.
	GetByID(id string) (*entity.Order, error)
	// GetForUpdate bloquea la fila del ordine (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Order, error)
	List(f OrderFilter) ([]*entity.Order, error)
	UpdateStatus(id, status string) error
	// Delete elimina el ordine; las líneas caen por cascade.
	Delete(id string) error
}
