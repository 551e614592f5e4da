package orders

import (
	"context"

	"github.com/jpcastillo/warehouse-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad de la transición de estado.
type TxRunner interface {
	Run(ctx context.Context, fn func(r repository.TxRepos) error) error
}

// Notifier publica eventos post-commit hacia los suscriptores WebSocket.
// Best-effort: el caso de uso no espera confirmación de entrega.
type Notifier interface {
	NotifyOrderUpdate(orderID, status string)
	NotifyStockChange(productID string, quantity int, movementType string)
}
