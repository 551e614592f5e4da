package stock

import (
	"context"

	"github.com/jpcastillo/warehouse-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx.
type TxRunner interface {
	Run(ctx context.Context, fn func(r repository.TxRepos) error) error
}

// Notifier publica eventos post-commit hacia los suscriptores WebSocket.
type Notifier interface {
	NotifyStockChange(productID string, quantity int, movementType string)
}

// InventoryExporter genera el export XLSX del inventario por ubicación.
type InventoryExporter interface {
	ExportInventory(ctx context.Context, rows []repository.LocationInventoryRow) ([]byte, error)
}
