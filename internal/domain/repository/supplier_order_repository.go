package repository

import "github.com/jpcastillo/warehouse-api/internal/domain/entity"

// SupplierOrderFilter filtros de listado de ordini fornitore.
type SupplierOrderFilter struct {
	Status string
	Limit  int
	Offset int
}

// SupplierOrderRepository define el puerto de persistencia para SupplierOrder.
type SupplierOrderRepository interface {
	Create(order *entity.SupplierOrder) error
	GetByID(id string) (*entity.SupplierOrder, error)
	GetForUpdate(id string) (*entity.SupplierOrder, error)
	List(f SupplierOrderFilter) ([]*entity.SupplierOrder, error)
	UpdateStatus(id, status string) error
	Delete(id string) error
}
