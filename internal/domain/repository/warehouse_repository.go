package repository

import "github.com/jpcastillo/warehouse-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para magazzini, zonas y ubicaciones.
type WarehouseRepository interface {
	Create(w *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	List(limit, offset int) ([]*entity.Warehouse, error)

	CreateZone(z *entity.WarehouseZone) error
	ListZones(warehouseID string) ([]*entity.WarehouseZone, error)

	CreateLocation(l *entity.Location) error
	GetLocation(id string) (*entity.Location, error)
	ListLocations(zoneID string, limit, offset int) ([]*entity.Location, error)
}

// LocationInventoryRow fila denormalizada para listados y export.
type LocationInventoryRow struct {
	LocationBarcode string
	Aisle           string
	Rack            string
	Level           string
	Bin             string
	ProductSKU      string
	ProductName     string
	LotNumber       string
	Quantity        int
	Reserved        int
}

// LocationInventoryRepository define el puerto para el inventario por ubicación.
// Usado dentro de transacciones para garantizar consistencia.
type LocationInventoryRepository interface {
	// Get devuelve la fila (location, product) sin considerar lote; nil si no existe.
	Get(locationID, productID string) (*entity.LocationInventory, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE); nil si no existe.
	GetForUpdate(locationID, productID string) (*entity.LocationInventory, error)
	// Upsert inserta o incrementa la cantidad de la fila clave (location, product);
	// nunca debe producir una segunda fila para el mismo par. Llamar dentro de una tx.
	Upsert(inv *entity.LocationInventory) error
	// Update sobreescribe quantity y reserved_quantity de una fila existente.
	Update(inv *entity.LocationInventory) error
	// FindPickLocation devuelve la ubicación con más stock del producto (nil si ninguna).
	FindPickLocation(productID string) (*entity.LocationInventory, error)
	ListByLocation(locationID string) ([]*entity.LocationInventory, error)
	// Report devuelve el inventario por ubicación denormalizado para el export.
	Report() ([]LocationInventoryRow, error)
}
