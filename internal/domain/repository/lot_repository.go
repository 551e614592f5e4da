package repository

import "github.com/jpcastillo/warehouse-api/internal/domain/entity"

// LotFilter filtros de listado de lotes.
type LotFilter struct {
	ProductID string
	Status    string
	Limit     int
	Offset    int
}

// LotRepository define el puerto de persistencia para Lot.
type LotRepository interface {
	Create(lot *entity.Lot) error
	GetByID(id string) (*entity.Lot, error)
	// GetByProductAndNumber busca por la clave natural (product_id, lot_number); nil si no existe.
	GetByProductAndNumber(productID, lotNumber string) (*entity.Lot, error)
	List(f LotFilter) ([]*entity.Lot, error)
}
