package repository

import "github.com/jpcastillo/warehouse-api/internal/domain/entity"

// ASNFilter filtros de listado de ASN.
type ASNFilter struct {
	Status      string
	WarehouseID string
	Limit       int
	Offset      int
}

// ASNRepository define el puerto de persistencia para ASN y sus líneas.
type ASNRepository interface {
	// Create persiste el ASN y sus líneas.
	Create(asn *entity.ASN) error
	// GetByID devuelve el ASN con sus líneas cargadas.
	GetByID(id string) (*entity.ASN, error)
	// GetForUpdate bloquea la fila cabecera del ASN (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.ASN, error)
	List(f ASNFilter) ([]*entity.ASN, error)
	// UpdateHeader actualiza status, arrived_at y completed_at de la cabecera.
	UpdateHeader(asn *entity.ASN) error
	// GetItem devuelve una línea por ID (nil si no existe).
	GetItem(itemID string) (*entity.ASNItem, error)
	// UpdateItem actualiza received_quantity y status de una línea.
	UpdateItem(item *entity.ASNItem) error
	// CountItemsNotReceived cuenta las líneas cuyo estado no es "ricevuto".
	CountItemsNotReceived(asnID string) (int, error)
	Delete(id string) error
}
