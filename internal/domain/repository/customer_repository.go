package repository

import "github.com/jpcastillo/warehouse-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	// Create persiste el cliente y sus direcciones.
	Create(c *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List(search string, limit, offset int) ([]*entity.Customer, error)
	Update(c *entity.Customer) error
	// Delete elimina el cliente; las direcciones caen por cascade.
	Delete(id string) error
}
